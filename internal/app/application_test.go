package app

import (
	"errors"
	"testing"

	"ocean-clock/internal/gui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDriver(t *testing.T) Driver {
	return func() (fyne.App, error) {
		return test.NewTempApp(t), nil
	}
}

func syncDispatch(fn func()) { fn() }

func TestNewApplicationDriverFailure(t *testing.T) {
	failing := func() (fyne.App, error) {
		return nil, errors.Join(ErrInitialization, errors.New("no display"))
	}

	application, err := NewApplication(failing, nil, Options{})

	assert.Nil(t, application)
	assert.ErrorIs(t, err, ErrInitialization)
}

func TestNewApplicationBuildsClockWindow(t *testing.T) {
	application, err := NewApplication(testDriver(t), nil, Options{
		Clock:    clockwork.NewFakeClock(),
		Dispatch: syncDispatch,
	})
	require.NoError(t, err)

	cw := application.ClockWindow()
	require.NotNil(t, cw)
	assert.Equal(t, gui.StateRunning, cw.State())
	assert.Equal(t, gui.Title, application.window.Title())
	assert.Same(t, cw.Content(), application.window.Content())

	application.RequestShutdown()
	assert.Equal(t, gui.StateClosed, cw.State())
}

func TestRunTearsDownAfterEventLoop(t *testing.T) {
	application, err := NewApplication(testDriver(t), nil, Options{
		Clock:    clockwork.NewFakeClock(),
		Dispatch: syncDispatch,
	})
	require.NoError(t, err)

	// the test driver's event loop returns immediately
	application.Run()

	cw := application.ClockWindow()
	assert.Equal(t, gui.StateClosed, cw.State())
	assert.False(t, cw.RefreshPending())

	assert.NotPanics(t, func() {
		application.RequestShutdown()
		application.lifecycle.Shutdown()
	})
}

func TestGuardInitConvertsPanic(t *testing.T) {
	err := guardInit("create window", func() { panic("glfw: no monitor") })

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInitialization)
	assert.Contains(t, err.Error(), "create window")

	assert.NoError(t, guardInit("noop", func() {}))
}
