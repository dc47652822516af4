package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"vertical-roulette/internal/gui/layout"
	"vertical-roulette/internal/roulette"
)

const (
	SlotFirstCenter = 130
	SlotPitch       = 60
	SlotRowHeight   = 60
	SlotTextSize    = 36
	SlotAreaWidth   = 560
)

var (
	DisplayBackground = color.NRGBA{R: 0x34, G: 0x49, B: 0x5E, A: 0xFF}
	MarkerFill        = color.NRGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF}
	MarkerStroke      = color.White
	PositiveColor     = color.NRGBA{R: 0xFF, G: 0x69, B: 0xB4, A: 0xFF}
	NegativeColor     = color.NRGBA{R: 0x1E, G: 0x90, B: 0xFF, A: 0xFF}
)

// SlotDisplay draws the five visible labels over a fixed center marker.
type SlotDisplay struct {
	container *fyne.Container
	marker    *canvas.Rectangle
	rows      [roulette.WindowSize]*canvas.Text
}

func NewSlotDisplay() *SlotDisplay {
	sd := &SlotDisplay{}

	rowObjects := make([]fyne.CanvasObject, 0, roulette.WindowSize)
	for i := range sd.rows {
		text := canvas.NewText("", NegativeColor)
		text.TextSize = SlotTextSize
		text.TextStyle = fyne.TextStyle{Bold: true}
		text.Alignment = fyne.TextAlignCenter
		sd.rows[i] = text
		rowObjects = append(rowObjects, text)
	}

	sd.marker = canvas.NewRectangle(MarkerFill)
	sd.marker.StrokeColor = MarkerStroke
	sd.marker.StrokeWidth = 2

	background := canvas.NewRectangle(DisplayBackground)
	background.SetMinSize(fyne.NewSize(SlotAreaWidth, 0))

	rowLayout := layout.NewFixedRowLayout(SlotFirstCenter, SlotPitch, SlotRowHeight)
	// The marker follows the stop row, which is the second row, not the middle one.
	markerLayout := layout.NewFixedRowLayout(
		SlotFirstCenter+roulette.CenterIndex*SlotPitch, SlotPitch, SlotRowHeight)

	sd.container = container.NewStack(
		background,
		container.New(markerLayout, sd.marker),
		container.New(rowLayout, rowObjects...),
	)

	return sd
}

func (sd *SlotDisplay) GetContainer() *fyne.Container {
	return sd.container
}

// SetRows overwrites the drawn labels and their colors.
func (sd *SlotDisplay) SetRows(w roulette.Window) {
	for i, label := range w {
		row := sd.rows[i]
		row.Text = label
		row.Color = ColorFor(label)
		row.Refresh()
	}
}

func ColorFor(label string) color.Color {
	if roulette.SignOf(label) == roulette.Positive {
		return PositiveColor
	}
	return NegativeColor
}

// Rows returns the labels currently drawn.
func (sd *SlotDisplay) Rows() roulette.Window {
	var w roulette.Window
	for i, row := range sd.rows {
		w[i] = row.Text
	}
	return w
}

func (sd *SlotDisplay) Row(i int) *canvas.Text {
	return sd.rows[i]
}
