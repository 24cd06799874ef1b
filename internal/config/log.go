package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a structured logger writing to w.
// The level is read from LOG_LEVEL and defaults to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
