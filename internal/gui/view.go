package gui

import (
	"image/color"

	"vertical-roulette/internal/gui/components"
	"vertical-roulette/internal/logger"
	"vertical-roulette/internal/roulette"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

var WindowBackground = color.NRGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF}

// View lays out the spin button above the slot display and implements
// roulette.View.
type View struct {
	logger logger.Logger

	slots         *components.SlotDisplay
	controls      *components.SpinControls
	mainContainer *fyne.Container
}

func NewView(log logger.Logger) *View {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	view := &View{
		logger:   log,
		slots:    components.NewSlotDisplay(),
		controls: components.NewSpinControls(),
	}

	view.setupLayout()
	return view
}

func (v *View) setupLayout() {
	content := container.NewBorder(
		container.NewPadded(v.controls.GetContainer()),
		nil, nil, nil,
		container.NewPadded(v.slots.GetContainer()),
	)

	v.mainContainer = container.NewStack(
		canvas.NewRectangle(WindowBackground),
		content,
	)
}

func (v *View) GetMainContainer() *fyne.Container {
	return v.mainContainer
}

func (v *View) SetSpinHandler(handler func()) {
	v.controls.SetSpinHandler(func() {
		v.logger.Debug("View", "spin requested", nil)
		handler()
	})
}

func (v *View) Render(w roulette.Window) {
	v.slots.SetRows(w)
}

func (v *View) SetSpinEnabled(enabled bool) {
	v.controls.SetEnabled(enabled)
}
