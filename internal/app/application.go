package app

import (
	"runtime"
	"sync"

	"vertical-roulette/internal/config"
	"vertical-roulette/internal/gui"
	"vertical-roulette/internal/logger"
	"vertical-roulette/internal/roulette"
	"vertical-roulette/internal/scheduler"
	"vertical-roulette/internal/shutdown"

	"fyne.io/fyne/v2"
)

const (
	AppID      = "com.roulette.vertical"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	view       *gui.View
	controller *roulette.Controller
	shutdown   *shutdown.Manager
	closeLog   sync.Once
}

// NewApplication builds the window and wires the controller to it. The
// caller owns fyneApp; tests pass a fyne test app.
func NewApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(cfg.Window.Title)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	view := gui.NewView(log)
	controller, err := roulette.NewController(catalog, view, scheduler.NewUI(), log, cfg.Options())
	if err != nil {
		return nil, err
	}
	view.SetSpinHandler(controller.StartSpin)
	window.SetContent(view.GetMainContainer())

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		view:       view,
		controller: controller,
		shutdown:   shutdown.NewManager(log),
	}

	application.shutdown.Register("controller", controller)

	application.setupLifecycle()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":    AppVersion,
		"window":     cfg.Window.Title,
		"width":      cfg.Window.Width,
		"height":     cfg.Window.Height,
		"go_version": runtime.Version(),
	})

	return application, nil
}

// Run shows the window and blocks in the Fyne event loop until it closes.
func (a *Application) Run() error {
	a.shutdown.Listen()

	a.logger.Info("Application", "GUI displayed", nil)
	a.window.ShowAndRun()

	a.Shutdown()
	return nil
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Controller() *roulette.Controller {
	return a.controller
}
