package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/nimah79/spritelab/components"
	cfg "github.com/nimah79/spritelab/config"
	"github.com/nimah79/spritelab/fonts"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

var menuLabels = map[components.MainMenuOption]string{
	components.MainMenuStart:   "Start",
	components.MainMenuOptions: "Options",
	components.MainMenuExit:    "Exit",
}

// GetOrCreateMenu returns the singleton menu state, creating it if needed.
func GetOrCreateMenu(ecs *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Menu))
		components.Menu.Get(entry).Options = []components.MainMenuOption{
			components.MainMenuStart,
			components.MainMenuOptions,
			components.MainMenuExit,
		}
	}
	return components.Menu.Get(entry)
}

// GetOrCreateOptions returns the singleton options panel state.
func GetOrCreateOptions(ecs *ecs.ECS) *components.OptionsData {
	entry, ok := components.Options.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Options))
	}
	return components.Options.Get(entry)
}

// NewUpdateMenu creates an UpdateMenu system with scene transition
// capability. The arena scene is created through a factory so the menu
// doesn't import scenes.
func NewUpdateMenu(sceneChanger SceneChanger, createArenaScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		// The ebitenui options panel owns input while it is open.
		if GetOrCreateOptions(e).IsOpen {
			return
		}

		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createArenaScene())
			case components.MainMenuOptions:
				GetOrCreateOptions(e).IsOpen = true
			case components.MainMenuExit:
				os.Exit(0)
			}
		}
	}
}

// DrawMenu renders the title and the selectable options.
func DrawMenu(ecs *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(ecs)

	titleFont := fonts.Title.Get()
	titleX := cfg.C.Width/2 - len(cfg.Menu.Title)*9
	text.Draw(screen, cfg.Menu.Title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.Options {
		label := menuLabels[option]
		clr := cfg.Menu.TextColor
		if i == menu.SelectedIndex {
			clr = cfg.Menu.SelectedColor
			label = "> " + label
		}
		y := cfg.Menu.ItemStartY + float64(i)*cfg.Menu.ItemHeight
		text.Draw(screen, label, menuFont, cfg.C.Width/2-50, int(y), clr)
	}

	hintFont := fonts.Small.Get()
	text.Draw(screen, cfg.Menu.HintText, hintFont, cfg.Hud.Margin, cfg.C.Height-12, cfg.Menu.TextColor)
}
