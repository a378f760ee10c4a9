package systems

import (
	"math"

	"github.com/nimah79/spritelab/components"
	"github.com/nimah79/spritelab/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tickSeconds = 1.0 / 60

// UpdateHazards advances every hazard's spin, sweep tween and scale pulse,
// and keeps its broadphase body in step with the sprite.
func UpdateHazards(ecs *ecs.ECS) {
	state := GetArenaState(ecs)
	if state.Paused || state.GameOver {
		return
	}

	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		hazard := components.Hazard.Get(e)
		sprite := components.Sprite.Get(e)

		sprite.Angle = math.Mod(sprite.Angle+hazard.SpinRate, 360)

		motion := components.Motion.Get(e)
		if motion.Seq != nil {
			v, _, done := motion.Seq.Update(tickSeconds)
			if motion.Horizontal {
				sprite.X = float64(v)
				sprite.Y = motion.Origin
			} else {
				sprite.X = motion.Origin
				sprite.Y = float64(v)
			}
			if done {
				motion.Seq.Reset()
			}
		}

		pulse := components.Pulse.Get(e)
		if pulse.Seq != nil {
			v, _, done := pulse.Seq.Update(tickSeconds)
			sprite.Size = float64(v)
			if done {
				pulse.Seq.Reset()
			}
		}

		// The broadphase body follows the destination rect.
		obj := components.Object.Get(e)
		rect := sprite.DestRect()
		obj.X = float64(rect.X)
		obj.Y = float64(rect.Y)
		obj.W = float64(rect.W)
		obj.H = float64(rect.H)
		obj.Update()
	})
}
