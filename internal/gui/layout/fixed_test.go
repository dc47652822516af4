package layout

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
)

func TestFixedRowLayoutPositions(t *testing.T) {
	rows := []fyne.CanvasObject{
		canvas.NewRectangle(nil),
		canvas.NewRectangle(nil),
		canvas.NewRectangle(nil),
	}
	l := NewFixedRowLayout(100, 60, 40)

	l.Layout(rows, fyne.NewSize(500, 400))

	for i, obj := range rows {
		assert.Equal(t, fyne.NewPos(0, 80+float32(i)*60), obj.Position())
		assert.Equal(t, fyne.NewSize(500, 40), obj.Size())
	}
}

func TestFixedRowLayoutMinSize(t *testing.T) {
	small := canvas.NewRectangle(nil)
	small.SetMinSize(fyne.NewSize(50, 10))
	wide := canvas.NewRectangle(nil)
	wide.SetMinSize(fyne.NewSize(200, 10))

	l := NewFixedRowLayout(100, 60, 40)

	assert.Equal(t, fyne.NewSize(200, 180), l.MinSize([]fyne.CanvasObject{small, wide}))
	assert.Equal(t, fyne.NewSize(0, 0), l.MinSize(nil))
}
