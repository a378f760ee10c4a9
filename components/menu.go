package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuOptions
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int
	Options       []MainMenuOption
}

var Menu = donburi.NewComponentType[MenuData]()

// OptionsData stores the state behind the ebitenui options panel overlay.
type OptionsData struct {
	IsOpen     bool
	Fullscreen bool
}

var Options = donburi.NewComponentType[OptionsData]()
