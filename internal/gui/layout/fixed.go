package layout

import (
	"fyne.io/fyne/v2"
)

// FixedRowLayout stacks objects on rows of constant pitch regardless of their
// content, so a changing label never moves its neighbours.
type FixedRowLayout struct {
	firstCenter float32
	pitch       float32
	rowHeight   float32
}

// NewFixedRowLayout places the center of row i at firstCenter + i*pitch.
func NewFixedRowLayout(firstCenter, pitch, rowHeight float32) *FixedRowLayout {
	return &FixedRowLayout{
		firstCenter: firstCenter,
		pitch:       pitch,
		rowHeight:   rowHeight,
	}
}

func (frl *FixedRowLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for i, obj := range objects {
		obj.Resize(fyne.NewSize(containerSize.Width, frl.rowHeight))
		obj.Move(fyne.NewPos(0, frl.RowTop(i)))
	}
}

func (frl *FixedRowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}

	maxWidth := float32(0)
	for _, obj := range objects {
		if w := obj.MinSize().Width; w > maxWidth {
			maxWidth = w
		}
	}

	return fyne.NewSize(maxWidth, frl.RowTop(len(objects)-1)+frl.rowHeight)
}

// RowTop returns the y offset of the top edge of row i.
func (frl *FixedRowLayout) RowTop(i int) float32 {
	return frl.firstCenter + float32(i)*frl.pitch - frl.rowHeight/2
}
