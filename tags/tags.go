package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Hazard = donburi.NewTag().SetName("Hazard")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for the broadphase space
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
	ResolvHazard = "hazard"
)
