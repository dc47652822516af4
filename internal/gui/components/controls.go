package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const SpinButtonText = "回転開始"

// SpinControls holds the single spin button.
type SpinControls struct {
	container   *fyne.Container
	spinButton  *widget.Button
	spinHandler func()
}

func NewSpinControls() *SpinControls {
	sc := &SpinControls{}

	sc.spinButton = widget.NewButton(SpinButtonText, sc.onSpin)
	sc.spinButton.Importance = widget.DangerImportance

	sc.container = container.NewCenter(sc.spinButton)
	return sc
}

func (sc *SpinControls) GetContainer() *fyne.Container {
	return sc.container
}

func (sc *SpinControls) SetSpinHandler(handler func()) {
	sc.spinHandler = handler
}

func (sc *SpinControls) SetEnabled(enabled bool) {
	if enabled {
		sc.spinButton.Enable()
	} else {
		sc.spinButton.Disable()
	}
}

func (sc *SpinControls) Button() *widget.Button {
	return sc.spinButton
}

func (sc *SpinControls) onSpin() {
	if sc.spinHandler != nil {
		sc.spinHandler()
	}
}
