package greeting

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// continueUI is the "continue" control shown after the fireworks. The UI is
// drawn to a screen-sized offscreen image so the button layer's fade can be
// applied to it as a whole.
type continueUI struct {
	ui        *ebitenui.UI
	offscreen *ebiten.Image
}

// newContinueUI builds a single button anchored at the bottom center, at the
// rect Show.ButtonRect reports.
func newContinueUI(label string, font *TTFFont, onClick func()) *continueUI {
	idle := imageui.NewNineSliceColor(color.NRGBA{R: 0xf4, G: 0x72, B: 0xb6, A: 0xff})
	hover := imageui.NewNineSliceColor(color.NRGBA{R: 0xf9, G: 0xa8, B: 0xd4, A: 0xff})
	pressed := imageui.NewNineSliceColor(color.NRGBA{R: 0xec, G: 0x48, B: 0x99, A: 0xff})

	var face ebtext.Face = font.Sized(22).Face()
	textColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	button := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Hover: hover, Pressed: pressed}),
		widget.ButtonOpts.Text(label, &face, textColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(ButtonWidth, ButtonHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)

	// The padding lifts the button off the bottom edge by ButtonMarginBottom.
	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: ButtonMarginBottom}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	bar.AddChild(button)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(bar)

	return &continueUI{ui: &ebitenui.UI{Container: root}}
}

func (c *continueUI) update() {
	c.ui.Update()
}

func (c *continueUI) draw(screen *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	b := screen.Bounds()
	c.offscreen = ensureImage(c.offscreen, b.Dx(), b.Dy())
	c.offscreen.Clear()
	c.ui.Draw(c.offscreen)

	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(c.offscreen, &op)
}

func (c *continueUI) dispose() {
	if c.offscreen != nil {
		c.offscreen.Deallocate()
		c.offscreen = nil
	}
}
