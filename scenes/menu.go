package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/nimah79/spritelab/config"
	"github.com/nimah79/spritelab/systems"
	"github.com/nimah79/spritelab/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	optionsUI    *ui.OptionsUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	// The ebitenui options panel runs outside the ECS; while it is open it
	// owns input and the menu systems stand down.
	if systems.GetOrCreateOptions(ms.ecs).IsOpen {
		ms.optionsUI.Update()
	}
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)

	if systems.GetOrCreateOptions(ms.ecs).IsOpen {
		ms.optionsUI.Draw(screen)
	}
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Create arena scene factory that captures the scene changer
	createArenaScene := func() interface{} {
		return NewArenaScene(ms.sceneChanger)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createArenaScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	options := systems.GetOrCreateOptions(ms.ecs)
	ms.optionsUI = ui.NewOptionsUI(options,
		func() float64 {
			best, _ := systems.LoadBestTime()
			return best
		},
		nil,
		systems.ResetBestTime,
	)
}
