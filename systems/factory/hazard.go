package factory

import (
	"github.com/nimah79/spritelab/archetypes"
	"github.com/nimah79/spritelab/assets"
	"github.com/nimah79/spritelab/components"
	cfg "github.com/nimah79/spritelab/config"
	"github.com/nimah79/spritelab/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard spawns a spinning hazard from a level spawn point. The kind
// picks the sprite and spin defaults; sweep and range come straight from the
// Tiled object properties.
func CreateHazard(ecs *ecs.ECS, spawn assets.HazardSpawn) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	kind := components.HazardSaw
	spriteName := "saw"
	baseSize := float64(cfg.Hazard.SawDrawSize)
	spinRate := cfg.Hazard.SawSpinRate
	if spawn.Kind == "ring" {
		kind = components.HazardRing
		spriteName = "ring"
		baseSize = float64(cfg.Hazard.RingDrawSize)
		spinRate = cfg.Hazard.RingSpinRate
	}

	sprite := assets.Get(spriteName)
	components.Sprite.SetValue(hazard, components.SpriteData{
		Image:    sprite.Image,
		AlphaMap: sprite.AlphaMap,
		X:        spawn.X,
		Y:        spawn.Y,
		Size:     baseSize,
	})
	components.Hazard.SetValue(hazard, components.HazardData{
		Kind:     kind,
		SpinRate: spinRate,
		BaseSize: baseSize,
	})

	// The hazard moves using a *gween.Sequence of tweens, sweeping it back
	// and forth over its range. Static hazards keep a nil sequence.
	if spawn.Sweep != "" && spawn.Range != 0 {
		from := spawn.Y
		origin := spawn.X
		horizontal := spawn.Sweep == "horizontal"
		if horizontal {
			from = spawn.X
			origin = spawn.Y
		}
		leg := cfg.Hazard.SweepSeconds
		motion := gween.NewSequence()
		motion.Add(
			gween.New(float32(from), float32(from+spawn.Range), leg, ease.InOutQuad),
			gween.New(float32(from+spawn.Range), float32(from), leg, ease.InOutQuad),
		)
		components.Motion.SetValue(hazard, components.MotionData{
			Seq:        motion,
			Horizontal: horizontal,
			Origin:     origin,
		})
	}

	// Scale pulse around the base draw size, so silhouettes get resampled to
	// sizes other than the native sprite resolution.
	amp := float32(cfg.Hazard.PulseAmplitude * baseSize)
	half := cfg.Hazard.PulsePeriod / 2
	pulse := gween.NewSequence()
	pulse.Add(
		gween.New(float32(baseSize)-amp, float32(baseSize)+amp, half, ease.InOutQuad),
		gween.New(float32(baseSize)+amp, float32(baseSize)-amp, half, ease.InOutQuad),
	)
	components.Pulse.SetValue(hazard, components.PulseData{Seq: pulse})

	obj := resolv.NewObject(spawn.X-baseSize/2, spawn.Y-baseSize/2, baseSize, baseSize, tags.ResolvHazard)
	obj.SetShape(resolv.NewRectangle(0, 0, baseSize, baseSize))
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return hazard
}
