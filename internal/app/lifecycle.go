package app

import (
	"fyne.io/fyne/v2"

	"vertical-roulette/internal/shutdown"
)

func (a *Application) setupLifecycle() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.Shutdown()
		a.window.Close()
	})

	// Signals arrive off the UI goroutine; the controller must only be
	// touched on it.
	a.shutdown.SetSignalHandler(func() {
		fyne.Do(func() {
			a.Shutdown()
			a.fyneApp.Quit()
		})
	})
}

// Shutdown stops any running spin and releases the logger. Safe to call more
// than once; must run on the UI goroutine.
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()

	// The manager logs until it returns, so the log file closes after it.
	a.closeLog.Do(func() {
		if closer, ok := a.logger.(shutdown.Shutdownable); ok {
			closer.Shutdown()
		}
	})
}
