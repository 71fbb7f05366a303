package cmd

import (
	"os"

	"github.com/tonhe/graf/internal/logging"
)

// SetupLogging applies the configured log level. GRAF_LOG overrides it.
func SetupLogging() {
	level := loadOrDefaultConfig().LogLevel
	if env := os.Getenv("GRAF_LOG"); env != "" {
		level = env
	}
	if _, ok := logging.ParseLevel(level); !ok {
		logging.Warnf("unknown log level %q, keeping the current level", level)
		return
	}
	logging.SetLevel(level)
}
