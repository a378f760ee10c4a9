package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nimah79/spritelab/components"
	cfg "github.com/nimah79/spritelab/config"
	"github.com/nimah79/spritelab/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the health bar, the running time and the best time.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	margin := cfg.Hud.Margin

	// Background (dark gray), then current HP (green)
	vector.DrawFilledRect(screen,
		float32(margin), float32(margin),
		float32(cfg.Hud.BarWidth), float32(cfg.Hud.BarHeight),
		cfg.DarkGray, false)
	ratio := float32(hp.Current) / float32(hp.Max)
	if ratio < 0 {
		ratio = 0
	}
	vector.DrawFilledRect(screen,
		float32(margin), float32(margin),
		float32(cfg.Hud.BarWidth)*ratio, float32(cfg.Hud.BarHeight),
		cfg.Green, false)

	score := GetScore(ecs)
	face := fonts.Regular.Get()
	timeLine := fmt.Sprintf("time %.1fs", score.Seconds())
	bestLine := fmt.Sprintf("best %.1fs", score.BestSeconds)
	text.Draw(screen, timeLine, face, margin, margin+cfg.Hud.BarHeight+18, cfg.White)
	text.Draw(screen, bestLine, face, margin, margin+cfg.Hud.BarHeight+34, cfg.LightBlue)

	state := GetArenaState(ecs)
	if state.Paused {
		title := fonts.Title.Get()
		text.Draw(screen, "PAUSED", title, cfg.C.Width/2-70, cfg.C.Height/2, cfg.White)
	}
}
