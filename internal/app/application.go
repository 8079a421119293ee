package app

import (
	"ocean-clock/internal/clock"
	"ocean-clock/internal/gui"
	"ocean-clock/internal/logger"
	"ocean-clock/internal/shutdown"
	"ocean-clock/internal/theme"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"
)

const (
	AppName      = "Ocean Clock"
	AppID        = "com.oceanclock.app"
	AppVersion   = "1.0.0"
	WindowWidth  = 480
	WindowHeight = 300
)

// Driver creates the toolkit application, the one handle on process-wide UI
// state. Everything else receives it from here.
type Driver func() (fyne.App, error)

// DefaultDriver checks for a display surface and creates the fyne app.
func DefaultDriver() (fyne.App, error) {
	if err := probeDisplay(); err != nil {
		return nil, err
	}

	var a fyne.App
	err := guardInit("create app", func() {
		a = fyneapp.NewWithID(AppID)
	})
	return a, err
}

type Options struct {
	Clock    clockwork.Clock
	Dispatch clock.Dispatcher
}

type Application struct {
	fyneApp     fyne.App
	window      fyne.Window
	clockWindow *gui.ClockWindow
	logger      logger.Logger
	shutdown    *shutdown.Manager
	lifecycle   *Lifecycle
}

func NewApplication(driver Driver, log logger.Logger, opts Options) (*Application, error) {
	if log == nil {
		log = logger.NoOp{}
	}

	fyneApp, err := driver()
	if err != nil {
		return nil, err
	}

	var window fyne.Window
	err = guardInit("create window", func() {
		fyneApp.Settings().SetTheme(theme.ForFyne(theme.Default()))

		window = fyneApp.NewWindow(AppName)
		window.SetPadded(false)
		window.SetMaster()
		window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
		window.CenterOnScreen()
	})
	if err != nil {
		return nil, err
	}

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  WindowWidth,
		"window_height": WindowHeight,
	})

	clockWindow := gui.NewClockWindow(window, gui.Options{
		Theme:    theme.Default(),
		Clock:    opts.Clock,
		Dispatch: opts.Dispatch,
		Logger:   log,
	})

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register(clockWindow)

	application := &Application{
		fyneApp:     fyneApp,
		window:      window,
		clockWindow: clockWindow,
		logger:      log,
		shutdown:    shutdownManager,
		lifecycle:   NewLifecycle(clockWindow, log),
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the window and blocks in the toolkit event loop until the window
// closes or an interrupt arrives.
func (a *Application) Run() {
	a.shutdown.Listen()
	defer a.shutdown.Stop()

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)

	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	a.logger.Info("Application", "event loop finished", nil)
}

func (a *Application) ClockWindow() *gui.ClockWindow {
	return a.clockWindow
}

// RequestShutdown takes the same path as an interrupt signal.
func (a *Application) RequestShutdown() {
	a.shutdown.Shutdown()
}
