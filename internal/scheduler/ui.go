package scheduler

import (
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
)

// UI schedules callbacks on the Fyne UI goroutine.
type UI struct {
	dispatch func(func())
}

func NewUI() *UI {
	return &UI{dispatch: fyne.Do}
}

func (u *UI) AfterFunc(d time.Duration, fn func()) Timer {
	t := &uiTimer{}
	t.timer = time.AfterFunc(d, func() {
		u.dispatch(func() {
			// Stop may land between the timer firing and the UI goroutine
			// picking the callback up.
			if t.done.CompareAndSwap(false, true) {
				fn()
			}
		})
	})
	return t
}

type uiTimer struct {
	timer *time.Timer
	done  atomic.Bool
}

func (t *uiTimer) Stop() bool {
	t.timer.Stop()
	return t.done.CompareAndSwap(false, true)
}
