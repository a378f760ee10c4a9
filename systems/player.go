package systems

import (
	"math"

	"github.com/nimah79/spritelab/components"
	cfg "github.com/nimah79/spritelab/config"
	"github.com/nimah79/spritelab/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns input into the player's velocity and heading.
func UpdatePlayer(ecs *ecs.ECS) {
	state := GetArenaState(ecs)
	if state.Paused || state.GameOver {
		return
	}
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		sprite := components.Sprite.Get(e)

		var dx, dy float64
		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			dx -= 1
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			dx += 1
		}
		if GetAction(input, cfg.ActionMoveUp).Pressed {
			dy -= 1
		}
		if GetAction(input, cfg.ActionMoveDown).Pressed {
			dy += 1
		}

		if dx != 0 || dy != 0 {
			length := math.Hypot(dx, dy)
			player.SpeedX = dx / length * cfg.Player.Speed
			player.SpeedY = dy / length * cfg.Player.Speed
			// Sprite faces +X at angle 0; atan2 in screen coordinates is
			// already clockwise-positive.
			player.TargetAngle = math.Atan2(dy, dx) * 180 / math.Pi
		} else {
			player.SpeedX = 0
			player.SpeedY = 0
		}

		sprite.Angle = turnToward(sprite.Angle, player.TargetAngle, cfg.Player.TurnLerp)

		if player.InvulnFrames > 0 {
			player.InvulnFrames--
		}
	})
}

// turnToward closes a fraction of the shortest angular gap per frame.
func turnToward(current, target, lerp float64) float64 {
	diff := math.Mod(target-current, 360)
	if diff > 180 {
		diff -= 360
	}
	if diff < -180 {
		diff += 360
	}
	return current + diff*lerp
}
