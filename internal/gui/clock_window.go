package gui

import (
	"sync"
	"time"

	"ocean-clock/internal/clock"
	"ocean-clock/internal/gui/layout"
	"ocean-clock/internal/logger"
	"ocean-clock/internal/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/jonboulle/clockwork"
)

const (
	componentName = "ClockWindow"

	Title       = "Ocean Clock"
	Caption     = "Ocean Professional"
	CaptionSize = 10
	ShadowHex   = "#e5e7eb"

	initialTimeSize = 56
)

var timeStyle = fyne.TextStyle{Bold: true}

type Options struct {
	// Theme defaults to theme.Default().
	Theme *theme.Theme
	// Clock defaults to the real wall clock.
	Clock clockwork.Clock
	// Dispatch runs refresh work on the UI thread; defaults to fyne.Do.
	Dispatch clock.Dispatcher
	Logger   logger.Logger
}

// ClockWindow owns one window: its clock face, the refresh ticker and the
// resize-driven font sizing.
type ClockWindow struct {
	window   fyne.Window
	theme    *theme.Theme
	logger   logger.Logger
	ticker   *clock.Ticker
	dispatch clock.Dispatcher

	content  *fyne.Container
	timeText *canvas.Text
	caption  *canvas.Text
	accent   *canvas.Rectangle

	mu    sync.Mutex
	state State
}

func NewClockWindow(window fyne.Window, opts Options) *ClockWindow {
	if opts.Theme == nil {
		opts.Theme = theme.Default()
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Dispatch == nil {
		opts.Dispatch = fyne.Do
	}
	if opts.Logger == nil {
		opts.Logger = logger.NoOp{}
	}

	cw := &ClockWindow{
		window:   window,
		theme:    opts.Theme,
		logger:   opts.Logger,
		dispatch: opts.Dispatch,
		state:    StateRunning,
	}
	cw.ticker = clock.NewTicker(opts.Clock, clock.RefreshInterval, opts.Dispatch, cw.refresh)

	cw.buildContent()

	window.SetTitle(Title)
	window.SetContent(cw.content)
	window.SetCloseIntercept(cw.RequestClose)

	cw.HandleResize()
	cw.ticker.Start()

	cw.logger.Info(componentName, "clock window ready", map[string]interface{}{
		"refresh_interval_ms": clock.RefreshInterval.Milliseconds(),
	})

	return cw
}

func (cw *ClockWindow) buildContent() {
	background := canvas.NewRectangle(cw.theme.Background())
	shadow := canvas.NewRectangle(theme.MustParseHex(ShadowHex))
	surface := canvas.NewRectangle(cw.theme.Surface())

	cw.timeText = canvas.NewText(clock.Placeholder, cw.theme.Text())
	cw.timeText.TextStyle = timeStyle
	cw.timeText.TextSize = initialTimeSize
	cw.timeText.Alignment = fyne.TextAlignCenter

	cw.accent = canvas.NewRectangle(cw.theme.Secondary())

	cw.caption = canvas.NewText(Caption, cw.theme.Primary())
	cw.caption.TextSize = CaptionSize
	cw.caption.Alignment = fyne.TextAlignCenter

	objects := make([]fyne.CanvasObject, 6)
	objects[layout.IndexBackground] = background
	objects[layout.IndexShadow] = shadow
	objects[layout.IndexSurface] = surface
	objects[layout.IndexTime] = cw.timeText
	objects[layout.IndexAccent] = cw.accent
	objects[layout.IndexCaption] = cw.caption

	cw.content = container.New(layout.NewClockLayout(func(fyne.Size) { cw.HandleResize() }), objects...)
}

// refresh is one refresh tick; the ticker re-arms after it returns.
func (cw *ClockWindow) refresh(now time.Time) {
	text := clock.FormatTime(now)
	if text == cw.timeText.Text {
		return
	}
	cw.timeText.Text = text
	cw.timeText.Refresh()
}

// HandleResize re-reads the window dimensions and resizes the time text.
func (cw *ClockWindow) HandleResize() {
	var size fyne.Size
	err := bestEffort(cw.logger, "query window size", func() {
		size = cw.window.Canvas().Size()
	})
	if err != nil {
		return
	}
	cw.ApplySize(size)
}

// ApplySize sizes the time text for the given window dimensions. It is a
// no-op for dimensions the window system has not realized yet and after the
// window was closed.
func (cw *ClockWindow) ApplySize(size fyne.Size) {
	if cw.State() != StateRunning {
		return
	}
	if size.Width <= 0 || size.Height <= 0 {
		cw.logger.Debug(componentName, "window size not available", map[string]interface{}{
			"width":  size.Width,
			"height": size.Height,
		})
		return
	}

	base := clock.FontSize(size.Width, size.Height)
	if base == cw.timeText.TextSize {
		return
	}
	cw.timeText.TextSize = base
	cw.timeText.Refresh()

	cw.logger.Debug(componentName, "time font resized", map[string]interface{}{
		"width":     size.Width,
		"height":    size.Height,
		"font_size": base,
	})
}

// RequestClose cancels the refresh ticker and then closes the window. Both
// steps are best effort and repeated requests are ignored.
func (cw *ClockWindow) RequestClose() {
	cw.mu.Lock()
	if cw.state != StateRunning {
		cw.mu.Unlock()
		cw.logger.Debug(componentName, "close already requested", nil)
		return
	}
	cw.state = StateClosingRequested
	cw.mu.Unlock()

	cw.logger.Info(componentName, "close requested", nil)

	bestEffort(cw.logger, "cancel refresh", cw.ticker.Cancel)
	bestEffort(cw.logger, "close window", cw.window.Close)

	cw.mu.Lock()
	cw.state = StateClosed
	cw.mu.Unlock()

	cw.logger.Info(componentName, "window closed", nil)
}

// Shutdown posts a close request to the UI thread. It is safe to call from
// any goroutine, which is how interrupt signals reach the window.
func (cw *ClockWindow) Shutdown() {
	cw.dispatch(cw.RequestClose)
}

func (cw *ClockWindow) State() State {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	return cw.state
}

func (cw *ClockWindow) DisplayedTime() string {
	return cw.timeText.Text
}

func (cw *ClockWindow) TimeTextSize() float32 {
	return cw.timeText.TextSize
}

func (cw *ClockWindow) RefreshPending() bool {
	return cw.ticker.Pending()
}

func (cw *ClockWindow) Content() *fyne.Container {
	return cw.content
}
