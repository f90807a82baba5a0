package main

import (
	"github.com/finsight-io/finsight/internal/logging"
)

// SetupLogger configures the default logger based on provided log level and format
func SetupLogger(logLevel, logFormat string) {
	logging.SetupLogger(logLevel, logFormat)
}
