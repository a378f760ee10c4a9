package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nimah79/spritelab/collision"
	"github.com/nimah79/spritelab/components"
	cfg "github.com/nimah79/spritelab/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebugOverlay outlines every sprite's destination rect and rotated
// bounding box, and fills the live box intersection between the player and
// each hazard. Toggled with the debug overlay action; the filled rect shows
// exactly the region the pixel scan walks.
func DrawDebugOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		dest := sprite.DestRect()
		strokeRect(screen, dest, cfg.Yellow)
		strokeRect(screen, collision.BoundingBox(dest, sprite.Angle), cfg.Magenta)
	})

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	playerSprite := components.Sprite.Get(playerEntry)
	playerBox := collision.BoundingBox(playerSprite.DestRect(), playerSprite.Angle)

	components.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		hazardSprite := components.Sprite.Get(e)
		hazardBox := collision.BoundingBox(hazardSprite.DestRect(), hazardSprite.Angle)
		overlap := collision.Intersection(playerBox, hazardBox)
		if overlap.Empty() {
			return
		}
		// Premultiplied translucent red so sprites stay visible underneath.
		vector.DrawFilledRect(screen,
			float32(overlap.X), float32(overlap.Y),
			float32(overlap.W), float32(overlap.H),
			color.RGBA{R: 140, A: 140}, false)
	})
}

func strokeRect(screen *ebiten.Image, r collision.Rect, clr color.RGBA) {
	vector.StrokeRect(screen,
		float32(r.X), float32(r.Y),
		float32(r.W), float32(r.H),
		1, clr, false)
}
