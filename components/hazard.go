package components

import "github.com/yohamta/donburi"

// HazardKind selects the hazard sprite and its default motion parameters.
type HazardKind int

const (
	HazardSaw HazardKind = iota
	HazardRing
)

type HazardData struct {
	Kind     HazardKind
	SpinRate float64 // Degrees per frame, sign is direction
	BaseSize float64 // Draw size the scale pulse oscillates around
}

var Hazard = donburi.NewComponentType[HazardData]()
