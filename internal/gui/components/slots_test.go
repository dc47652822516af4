package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"vertical-roulette/internal/roulette"
)

func TestMarkerSitsBehindStopRow(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	sd := NewSlotDisplay()
	sd.GetContainer().Resize(fyne.NewSize(SlotAreaWidth, 400))

	center := sd.Row(roulette.CenterIndex)
	assert.Equal(t, center.Position(), sd.marker.Position())
	assert.Equal(t, center.Size(), sd.marker.Size())
	assert.Equal(t, float32(SlotFirstCenter+SlotPitch-SlotRowHeight/2), sd.marker.Position().Y)
}
