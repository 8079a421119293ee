package app

import (
	"errors"
	"fmt"
)

// ErrInitialization means the windowing subsystem could not give us a
// window. It is not retried.
var ErrInitialization = errors.New("windowing subsystem unavailable")

// guardInit runs a toolkit setup step and reports a panic from it as an
// initialization failure.
func guardInit(step string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrInitialization, step, r)
		}
	}()

	fn()
	return nil
}
