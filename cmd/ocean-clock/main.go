package main

import (
	"os"

	"ocean-clock/internal/app"
	"ocean-clock/internal/logger"
)

const (
	exitOK                    = 0
	exitInitializationFailure = 1
)

func main() {
	os.Exit(run(app.ConfigFromEnv().NewLogger(), app.DefaultDriver, app.Options{}))
}

func run(log logger.Logger, driver app.Driver, opts app.Options) int {
	application, err := app.NewApplication(driver, log, opts)
	if err != nil {
		log.Error("Main", err, map[string]interface{}{
			"exit_code": exitInitializationFailure,
		})
		return exitInitializationFailure
	}

	application.Run()

	log.Info("Main", "application terminated", nil)
	return exitOK
}
