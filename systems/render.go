package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nimah79/spritelab/components"
	cfg "github.com/nimah79/spritelab/config"
	"github.com/nimah79/spritelab/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawArena renders the walls and every sprite at its current destination
// rect and angle. The draw transform mirrors what collision queries assume:
// scale the native sprite to its on-screen size, rotate clockwise about the
// center, place at the sprite position.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		vector.DrawFilledRect(screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			cfg.WallGray, false)
	})

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}

		// Blink the player while invulnerable.
		if e.HasComponent(components.Player) {
			player := components.Player.Get(e)
			if player.InvulnFrames > 0 && (player.InvulnFrames/6)%2 == 0 {
				return
			}
		}

		native := float64(sprite.Image.Bounds().Dx())
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-native/2, -native/2)
		drawOp.GeoM.Scale(sprite.Size/native, sprite.Size/native)
		drawOp.GeoM.Rotate(sprite.Angle * math.Pi / 180)
		drawOp.GeoM.Translate(sprite.X, sprite.Y)
		screen.DrawImage(sprite.Image, drawOp)
	})
}
