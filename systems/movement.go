package systems

import (
	"github.com/nimah79/spritelab/components"
	"github.com/nimah79/spritelab/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement applies the player's velocity against the arena walls,
// one axis at a time so sliding along a wall works.
func UpdateMovement(ecs *ecs.ECS) {
	state := GetArenaState(ecs)
	if state.Paused || state.GameOver {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)

		if player.SpeedX != 0 {
			if check := obj.Check(player.SpeedX, 0, tags.ResolvSolid); check == nil {
				obj.X += player.SpeedX
			}
		}
		if player.SpeedY != 0 {
			if check := obj.Check(0, player.SpeedY, tags.ResolvSolid); check == nil {
				obj.Y += player.SpeedY
			}
		}
		obj.Update()

		sprite := components.Sprite.Get(e)
		sprite.X = obj.X + obj.W/2
		sprite.Y = obj.Y + obj.H/2
	})
}
