package app

import (
	"sync"

	"ocean-clock/internal/gui"
	"ocean-clock/internal/logger"
)

// Lifecycle makes sure the clock window is torn down once the event loop
// has returned, whatever ended it.
type Lifecycle struct {
	clockWindow *gui.ClockWindow
	logger      logger.Logger

	mu         sync.Mutex
	isShutdown bool
}

func NewLifecycle(cw *gui.ClockWindow, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		clockWindow: cw,
		logger:      log,
	}
}

func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	if l.isShutdown {
		l.mu.Unlock()
		return
	}
	l.isShutdown = true
	l.mu.Unlock()

	l.logger.Info("Lifecycle", "shutdown sequence initiated", map[string]interface{}{
		"window_state": l.clockWindow.State().String(),
	})

	// the event loop is gone, so call straight through instead of dispatching
	l.clockWindow.RequestClose()

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
