//go:build linux || freebsd || openbsd || netbsd

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbeDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	assert.ErrorIs(t, probeDisplay(), ErrInitialization)

	_, err := DefaultDriver()
	assert.ErrorIs(t, err, ErrInitialization)

	t.Setenv("WAYLAND_DISPLAY", "wayland-0")
	assert.NoError(t, probeDisplay())

	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("DISPLAY", ":0")
	assert.NoError(t, probeDisplay())
}
