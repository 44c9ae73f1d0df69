// Package debug provides conditional debug logging for stt.
//
// Debug logging is enabled by setting the STT_DEBUG environment variable:
//
//	STT_DEBUG=1 stt
//
// Messages go through the standard logger, so they follow wherever the
// caller points it (the TUI redirects it to a log file). When disabled, all
// functions are no-ops.
package debug

import (
	"log"
	"os"
	"time"
)

var enabled = os.Getenv("STT_DEBUG") != ""

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	return enabled
}

// SetEnabled allows programmatic control of debug logging.
func SetEnabled(e bool) {
	enabled = e
}

// Log writes a debug message if debug logging is enabled.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	log.Printf("[debug] "+format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	if !enabled {
		return
	}
	log.Printf("[debug] %s took %v", name, d)
}
