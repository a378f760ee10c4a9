package components

import "github.com/yohamta/donburi"

// ScoreData tracks the running survival time and the persisted best.
type ScoreData struct {
	Frames      int     // Survival frames this run
	BestSeconds float64 // Best survival time loaded from disk
	NewBest     bool    // Set when this run beat the loaded best
}

// Seconds returns the current run's survival time.
func (s *ScoreData) Seconds() float64 {
	return float64(s.Frames) / 60
}

var Score = donburi.NewComponentType[ScoreData]()
