package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedScore represents the score data stored on disk
type SavedScore struct {
	BestSeconds float64 `json:"bestSeconds"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "spritelab",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadBestTime loads the best survival time from disk. Zero with no error
// means no score has been saved yet.
func LoadBestTime() (float64, error) {
	if !gdataInitialized || gdataManager == nil {
		return 0, nil
	}

	data, err := gdataManager.LoadItem("score")
	if err != nil {
		log.Printf("Warning: Could not load score: %v", err)
		return 0, err
	}
	if data == nil {
		return 0, nil
	}

	var saved SavedScore
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved score: %v", err)
		return 0, err
	}
	return saved.BestSeconds, nil
}

// SaveBestTime writes the best survival time to disk
func SaveBestTime(seconds float64) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(SavedScore{BestSeconds: seconds})
	if err != nil {
		log.Printf("Warning: Could not marshal score: %v", err)
		return
	}
	if err := gdataManager.SaveItem("score", data); err != nil {
		log.Printf("Warning: Could not save score: %v", err)
	}
}

// ResetBestTime clears the stored best time (used by the options panel).
func ResetBestTime() {
	SaveBestTime(0)
}
