package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	cfg "github.com/nimah79/spritelab/config"
	"github.com/nimah79/spritelab/fonts"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates a system that handles input on the game over
// screen: select restarts the run, back returns to the main menu.
func NewUpdateGameOver(sceneChanger SceneChanger, createArenaScene, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		state := GetArenaState(e)
		if !state.GameOver {
			return
		}

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			sceneChanger.ChangeScene(createArenaScene())
		} else if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// DrawGameOver dims the arena and shows the final time over it.
func DrawGameOver(ecs *ecs.ECS, screen *ebiten.Image) {
	state := GetArenaState(ecs)
	if !state.GameOver {
		return
	}

	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height),
		cfg.BlackOverlay, false)

	score := GetScore(ecs)
	title := fonts.Title.Get()
	text.Draw(screen, "GAME OVER", title, cfg.C.Width/2-100, int(cfg.Menu.GameOverTitleY), cfg.Red)

	body := fonts.Bold.Get()
	timeLine := fmt.Sprintf("survived %.1fs", score.Seconds())
	text.Draw(screen, timeLine, body, cfg.C.Width/2-70, int(cfg.Menu.GameOverTitleY)+50, cfg.White)
	if score.NewBest {
		text.Draw(screen, "NEW BEST", body, cfg.C.Width/2-50, int(cfg.Menu.GameOverTitleY)+80, cfg.Yellow)
	} else {
		bestLine := fmt.Sprintf("best %.1fs", score.BestSeconds)
		text.Draw(screen, bestLine, body, cfg.C.Width/2-50, int(cfg.Menu.GameOverTitleY)+80, cfg.LightBlue)
	}

	hint := fonts.Small.Get()
	text.Draw(screen, cfg.Menu.GameOverHint, hint, cfg.C.Width/2-80, cfg.C.Height-30, cfg.White)
}
