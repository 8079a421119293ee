//go:build linux || freebsd || openbsd || netbsd

package app

import (
	"fmt"
	"os"
)

func probeDisplay() error {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("%w: neither DISPLAY nor WAYLAND_DISPLAY is set", ErrInitialization)
	}
	return nil
}
