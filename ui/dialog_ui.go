package ui

import (
	cfg "github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const dialogHint = "[enter]"

// DialogUI holds the ebitenui panel that shows one dialog line at a time
// along the bottom of the screen.
type DialogUI struct {
	UI *ebitenui.UI

	lineLabel *widget.Label
	visible   bool

	// Fonts (stored as interface for ebitenui compatibility)
	lineFace text.Face
	hintFace text.Face
}

// NewDialogUI builds the panel. width is the screen width in pixels; lines
// wrap inside the panel.
func NewDialogUI(width int) *DialogUI {
	dui := &DialogUI{}
	dui.loadFonts()
	dui.buildUI(width)
	return dui
}

func (dui *DialogUI) loadFonts() {
	dui.lineFace = text.NewGoXFace(fonts.Dialog.Get())
	dui.hintFace = text.NewGoXFace(fonts.Small.Get())
}

func (dui *DialogUI) buildUI(width int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(16)),
		)),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewBorderedNineSliceColor(cfg.BlackOverlay, cfg.White, 1)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, 80),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)

	dui.lineLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &dui.lineFace, &widget.LabelColor{Idle: cfg.White}),
		widget.LabelOpts.TextOpts(widget.TextOpts.MaxWidth(float64(width-56))),
	)
	panel.AddChild(dui.lineLabel)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(dialogHint, &dui.hintFace, &widget.LabelColor{Idle: cfg.Yellow}),
	))

	rootContainer.AddChild(panel)

	dui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetLine shows line in the panel. An empty line hides the panel.
func (dui *DialogUI) SetLine(line string) {
	dui.visible = line != ""
	dui.lineLabel.Label = line
}

func (dui *DialogUI) Visible() bool {
	return dui.visible
}

func (dui *DialogUI) Update() {
	if dui.visible {
		dui.UI.Update()
	}
}

func (dui *DialogUI) Draw(screen *ebiten.Image) {
	if dui.visible {
		dui.UI.Draw(screen)
	}
}
