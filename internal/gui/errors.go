package gui

import (
	"fmt"

	"ocean-clock/internal/logger"
)

// ToolkitStateError records a toolkit call made against a handle that was
// already torn down or not yet realized. It is never propagated past the
// ClockWindow.
type ToolkitStateError struct {
	Op    string
	Cause interface{}
}

func (e *ToolkitStateError) Error() string {
	return fmt.Sprintf("toolkit state error during %s: %v", e.Op, e.Cause)
}

func (e *ToolkitStateError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// bestEffort runs a toolkit call and converts a panic into a logged ToolkitStateError.
func bestEffort(log logger.Logger, op string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ToolkitStateError{Op: op, Cause: r}
			log.Debug(componentName, "toolkit call skipped", map[string]interface{}{
				"op":    op,
				"error": err.Error(),
			})
		}
	}()

	fn()
	return nil
}
