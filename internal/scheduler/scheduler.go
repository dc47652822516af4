// Package scheduler provides cancellable single-shot timers that are fired by
// an external driver: the Fyne event loop in the application and a virtual
// clock in tests and headless simulation.
package scheduler

import "time"

// Timer is a pending callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer; false means it already ran or was stopped.
	Stop() bool
}

// Scheduler arms single-shot timers. Callbacks never run concurrently with
// each other.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
