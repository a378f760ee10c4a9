package systems

import (
	"github.com/nimah79/spritelab/components"
	"github.com/yohamta/donburi/ecs"
)

// GetScore returns the singleton score, creating it if needed.
func GetScore(ecs *ecs.ECS) *components.ScoreData {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Score))
	}
	return components.Score.Get(entry)
}

// UpdateScore counts survival time while the run is live, and records a new
// best (persisting it) the moment the run ends.
func UpdateScore(ecs *ecs.ECS) {
	state := GetArenaState(ecs)
	score := GetScore(ecs)

	if state.GameOver {
		if !score.NewBest && score.Seconds() > score.BestSeconds {
			score.NewBest = true
			score.BestSeconds = score.Seconds()
			SaveBestTime(score.BestSeconds)
		}
		return
	}
	if state.Paused {
		return
	}
	score.Frames++
}
