package ui

import (
	"bytes"
	"fmt"
	goimage "image"

	cfg "github.com/automoto/sakura/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlUI is the overlay holding the bloom button
type ControlUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnBloom func()

	bloomButton *widget.Button
	buttonFace  text.Face
	scale       float64
}

// NewControlUI builds the control overlay. scale is the surface density;
// the UI lives in backing pixels, so sizes are multiplied by it.
func NewControlUI(scale float64, onBloom func()) (*ControlUI, error) {
	if scale <= 0 {
		scale = 1
	}
	cui := &ControlUI{
		OnBloom: onBloom,
		scale:   scale,
	}

	if err := cui.loadFonts(); err != nil {
		return nil, err
	}
	cui.buildUI()

	return cui, nil
}

func (cui *ControlUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to load UI font: %w", err)
	}
	cui.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.FontSize * cui.scale,
	}
	return nil
}

func (cui *ControlUI) buildUI() {
	// Transparent root so the blossoms stay visible
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	margin := int(float64(cfg.UI.ButtonMargin) * cui.scale)
	buttonRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(margin)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	cui.bloomButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(
				int(float64(cfg.UI.ButtonWidth)*cui.scale),
				int(float64(cfg.UI.ButtonHeight)*cui.scale),
			),
		),
		widget.ButtonOpts.Image(cui.buttonImage()),
		widget.ButtonOpts.Text(cfg.UI.ButtonLabel, &cui.buttonFace, &widget.ButtonTextColor{
			Idle:    cfg.UI.TextColor,
			Hover:   cfg.UI.TextColor,
			Pressed: cfg.UI.TextColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if cui.OnBloom != nil {
				cui.OnBloom()
			}
		}),
	)
	buttonRow.AddChild(cui.bloomButton)
	rootContainer.AddChild(buttonRow)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cui *ControlUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.UI.ButtonIdle),
		Hover:   image.NewNineSliceColor(cfg.UI.ButtonHover),
		Pressed: image.NewNineSliceColor(cfg.UI.ButtonPressed),
	}
}

// ButtonRect returns the bloom button's screen rectangle in backing pixels.
// It is empty until the UI has been laid out once.
func (cui *ControlUI) ButtonRect() goimage.Rectangle {
	return cui.bloomButton.GetWidget().Rect
}

// Update calls the UI's Update method
func (cui *ControlUI) Update() {
	cui.UI.Update()
}

// Draw renders the overlay on top of the scene
func (cui *ControlUI) Draw(screen *ebiten.Image) {
	cui.UI.Draw(screen)
}

// Scale returns the density the overlay was built for
func (cui *ControlUI) Scale() float64 {
	return cui.scale
}
