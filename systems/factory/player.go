package factory

import (
	"github.com/nimah79/spritelab/archetypes"
	"github.com/nimah79/spritelab/assets"
	"github.com/nimah79/spritelab/components"
	cfg "github.com/nimah79/spritelab/config"
	"github.com/nimah79/spritelab/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player ship at the given center position. The
// resolv body is smaller than the drawn sprite so wall sliding feels
// forgiving; pixel collision against hazards uses the sprite itself.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := float64(cfg.Player.CollisionSize)
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	sprite := assets.Get("ship")
	components.Sprite.SetValue(player, components.SpriteData{
		Image:    sprite.Image,
		AlphaMap: sprite.AlphaMap,
		X:        x,
		Y:        y,
		Size:     float64(cfg.Player.DrawSize),
	})

	components.Player.SetValue(player, components.PlayerData{})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
