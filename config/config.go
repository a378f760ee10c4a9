package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed         float64
	TurnLerp      float64 // Fraction of the angle gap closed per frame
	SpriteSize    int     // Native sprite resolution (square)
	DrawSize      int     // On-screen destination rect size (square)
	CollisionSize int     // resolv body used against walls

	// Combat
	Health       int
	InvulnFrames int
}

// HazardConfig contains configuration for the spinning arena hazards
type HazardConfig struct {
	SpriteSize int // Native sprite resolution (square)

	// Per-kind defaults; Tiled object properties can override
	SawDrawSize    int
	SawSpinRate    float64 // Degrees per frame
	RingDrawSize   int
	RingSpinRate   float64
	PulseAmplitude float64 // Scale pulse, fraction of draw size
	PulsePeriod    float32 // Seconds for one grow+shrink cycle
	SweepSeconds   float32 // Seconds for one leg of a patrol sweep

	Damage int
}

// HudConfig contains HUD layout values
type HudConfig struct {
	BarWidth  int
	BarHeight int
	Margin    int
}

// MenuConfig contains main menu layout and colors
type MenuConfig struct {
	Title          string
	TitleY         float64
	ItemStartY     float64
	ItemHeight     float64
	TitleColor     color.RGBA
	TextColor      color.RGBA
	SelectedColor  color.RGBA
	HintText       string
	GameOverHint   string
	GameOverTitleY float64
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the arena
	Overlay  bool // Draw bounding boxes and the live intersection rect
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Hazard HazardConfig
var Hud HudConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	WallGray     = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "spritelab",
	}

	Player = PlayerConfig{
		Speed:         3.0,
		TurnLerp:      0.25,
		SpriteSize:    32,
		DrawSize:      24,
		CollisionSize: 18,
		Health:        3,
		InvulnFrames:  90,
	}

	Hazard = HazardConfig{
		SpriteSize:     64,
		SawDrawSize:    48,
		SawSpinRate:    3.0,
		RingDrawSize:   64,
		RingSpinRate:   -1.5,
		PulseAmplitude: 0.25,
		PulsePeriod:    2.0,
		SweepSeconds:   3.0,
		Damage:         1,
	}

	Hud = HudConfig{
		BarWidth:  130,
		BarHeight: 13,
		Margin:    10,
	}

	Menu = MenuConfig{
		Title:          "SPRITELAB",
		TitleY:         90,
		ItemStartY:     170,
		ItemHeight:     28,
		TitleColor:     White,
		TextColor:      DarkBlue,
		SelectedColor:  LightBlue,
		HintText:       "arrows/stick move - esc pause - f1 overlay",
		GameOverHint:   "enter restart - esc menu",
		GameOverTitleY: 120,
	}

	Debug = DebugConfig{}
}
