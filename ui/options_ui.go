package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/nimah79/spritelab/components"
	cfg "github.com/nimah79/spritelab/config"
	"golang.org/x/image/font/gofont/goregular"
)

// OptionsUI holds the ebitenui interface for the options panel
type OptionsUI struct {
	UI      *ebitenui.UI
	Options *components.OptionsData

	// Callbacks
	OnClose     func()
	OnResetBest func()

	// Widget references for updates
	fullscreenButton *widget.Button
	overlayButton    *widget.Button
	bestLabel        *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face

	// Supplied by the scene each frame so the label stays current
	BestSeconds func() float64

	initialized bool
}

// NewOptionsUI creates the options panel with ebitenui
func NewOptionsUI(options *components.OptionsData, bestSeconds func() float64, onClose, onResetBest func()) *OptionsUI {
	oui := &OptionsUI{
		Options:     options,
		BestSeconds: bestSeconds,
		OnClose:     onClose,
		OnResetBest: onResetBest,
	}

	oui.loadFonts()
	oui.buildUI()

	return oui
}

func (oui *OptionsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Small faces to fit the 640x360 screen
	oui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	oui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (oui *OptionsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panelPadding := widget.Insets{Top: 10, Bottom: 10, Left: 16, Right: 16}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&panelPadding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("OPTIONS", &oui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	oui.fullscreenButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(170, 24)),
		widget.ButtonOpts.Image(oui.buttonImage()),
		widget.ButtonOpts.Text(fullscreenLabel(oui.Options.Fullscreen), &oui.normalFace, oui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			oui.Options.Fullscreen = !oui.Options.Fullscreen
			ebiten.SetFullscreen(oui.Options.Fullscreen)
			oui.UpdateUI()
		}),
	)
	panel.AddChild(oui.fullscreenButton)

	oui.overlayButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(170, 24)),
		widget.ButtonOpts.Image(oui.buttonImage()),
		widget.ButtonOpts.Text(overlayLabel(cfg.Debug.Overlay), &oui.normalFace, oui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cfg.Debug.Overlay = !cfg.Debug.Overlay
			oui.UpdateUI()
		}),
	)
	panel.AddChild(oui.overlayButton)

	oui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &oui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{100, 180, 255, 255},
		}),
	)
	panel.AddChild(oui.bestLabel)

	resetButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(170, 24)),
		widget.ButtonOpts.Image(oui.buttonImage()),
		widget.ButtonOpts.Text("Reset best time", &oui.normalFace, oui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if oui.OnResetBest != nil {
				oui.OnResetBest()
			}
			oui.UpdateUI()
		}),
	)
	panel.AddChild(resetButton)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(170, 24)),
		widget.ButtonOpts.Image(oui.buttonImage()),
		widget.ButtonOpts.Text("Back", &oui.normalFace, oui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			oui.Options.IsOpen = false
			if oui.OnClose != nil {
				oui.OnClose()
			}
		}),
	)
	panel.AddChild(backButton)

	rootContainer.AddChild(panel)

	oui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (oui *OptionsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (oui *OptionsUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{200, 200, 200, 255},
	}
}

// UpdateUI refreshes button labels to match the current state
func (oui *OptionsUI) UpdateUI() {
	if oui.fullscreenButton != nil {
		if textWidget := oui.fullscreenButton.Text(); textWidget != nil {
			textWidget.Label = fullscreenLabel(oui.Options.Fullscreen)
		}
	}
	if oui.overlayButton != nil {
		if textWidget := oui.overlayButton.Text(); textWidget != nil {
			textWidget.Label = overlayLabel(cfg.Debug.Overlay)
		}
	}
	if oui.bestLabel != nil && oui.BestSeconds != nil {
		oui.bestLabel.Label = fmt.Sprintf("Best time: %.1fs", oui.BestSeconds())
	}
}

func fullscreenLabel(on bool) string {
	if on {
		return "Fullscreen: on"
	}
	return "Fullscreen: off"
}

func overlayLabel(on bool) string {
	if on {
		return "Debug overlay: on"
	}
	return "Debug overlay: off"
}

// Update calls the UI's Update method
func (oui *OptionsUI) Update() {
	oui.UI.Update()
	// Update labels on first frame after widgets are validated
	if !oui.initialized {
		oui.initialized = true
		oui.UpdateUI()
	}
}

// Draw renders the panel
func (oui *OptionsUI) Draw(screen *ebiten.Image) {
	oui.UI.Draw(screen)
}
