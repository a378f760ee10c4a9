package systems

import (
	"github.com/nimah79/spritelab/collision"
	"github.com/nimah79/spritelab/components"
	cfg "github.com/nimah79/spritelab/config"
	"github.com/nimah79/spritelab/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePixelHits runs the pixel-accurate narrow phase between the player
// and every hazard whose broadphase cells it shares. resolv prunes the
// candidate set; collision.Check then rejects on rotated bounding boxes
// before it ever touches pixels, so the common case costs two box tests.
func UpdatePixelHits(ecs *ecs.ECS) {
	state := GetArenaState(ecs)
	if state.Paused || state.GameOver {
		return
	}

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.InvulnFrames > 0 {
		return
	}
	playerSprite := components.Sprite.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvHazard)
	if check == nil {
		return
	}

	for _, o := range check.ObjectsByTags(tags.ResolvHazard) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		hazardSprite := components.Sprite.Get(entry)

		if collision.Check(
			playerSprite.AlphaMap, playerSprite.DestRect(), playerSprite.Angle,
			hazardSprite.AlphaMap, hazardSprite.DestRect(), hazardSprite.Angle,
		) {
			health := components.Health.Get(playerEntry)
			health.Current -= cfg.Hazard.Damage
			player.InvulnFrames = cfg.Player.InvulnFrames
			return
		}
	}
}
