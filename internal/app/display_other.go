//go:build !(linux || freebsd || openbsd || netbsd)

package app

// Desktop platforms without X11 or Wayland always have a display surface.
func probeDisplay() error {
	return nil
}
