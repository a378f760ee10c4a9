package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Motion drives a hazard's position sweep along one axis.
type MotionData struct {
	Seq        *gween.Sequence
	Horizontal bool
	Origin     float64 // The fixed coordinate on the other axis
}

var Motion = donburi.NewComponentType[MotionData]()

// Pulse drives a hazard's scale oscillation, so its on-screen size differs
// from the sprite's native resolution most of the time.
type PulseData struct {
	Seq *gween.Sequence
}

var Pulse = donburi.NewComponentType[PulseData]()
