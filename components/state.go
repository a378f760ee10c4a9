package components

import "github.com/yohamta/donburi"

// ArenaStateData is the singleton run state for the arena scene.
type ArenaStateData struct {
	Paused   bool
	GameOver bool
}

var ArenaState = donburi.NewComponentType[ArenaStateData]()
