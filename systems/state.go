package systems

import (
	"github.com/nimah79/spritelab/components"
	cfg "github.com/nimah79/spritelab/config"
	"github.com/yohamta/donburi/ecs"
)

// GetArenaState returns the singleton arena run state, creating it if needed.
func GetArenaState(ecs *ecs.ECS) *components.ArenaStateData {
	entry, ok := components.ArenaState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.ArenaState))
	}
	return components.ArenaState.Get(entry)
}

// UpdateArenaState handles pausing, the debug overlay toggle, and flips the
// run into game over when the player's health reaches zero.
func UpdateArenaState(ecs *ecs.ECS) {
	state := GetArenaState(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionDebugOverlay).JustPressed {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}

	if state.GameOver {
		return
	}

	if GetAction(input, cfg.ActionPause).JustPressed {
		state.Paused = !state.Paused
	}

	if entry, ok := components.Player.First(ecs.World); ok {
		if components.Health.Get(entry).Current <= 0 {
			state.GameOver = true
		}
	}
}
