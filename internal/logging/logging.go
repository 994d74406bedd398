// Package logging configures the apex/log logger used by the CLI layer.
// The comparison engine itself never logs; every failure it can produce
// is returned to the caller as a typed error.
package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
)

// Init sets up apex/log with a single-line stderr handler. The level
// comes from the debug flag, then the configured level, then the
// JSONDELTA_LOG environment variable, defaulting to error.
func Init(debug bool, configured string) {
	level := strings.ToLower(configured)
	if level == "" {
		level = strings.ToLower(os.Getenv("JSONDELTA_LOG"))
	}
	if debug {
		level = "debug"
	}

	apexLevel := log.ErrorLevel
	switch level {
	case "debug":
		apexLevel = log.DebugLevel
	case "info":
		apexLevel = log.InfoLevel
	case "warn":
		apexLevel = log.WarnLevel
	case "error", "":
		apexLevel = log.ErrorLevel
	}

	log.SetHandler(&stderrHandler{})
	log.SetLevel(apexLevel)
}

// stderrHandler writes one compact line per entry to stderr so log
// output never mixes into the report on stdout.
type stderrHandler struct{}

// HandleLog implements the log.Handler interface
func (h *stderrHandler) HandleLog(e *log.Entry) error {
	level := "?"
	switch e.Level {
	case log.DebugLevel:
		level = "D"
	case log.InfoLevel:
		level = "I"
	case log.WarnLevel:
		level = "W"
	case log.ErrorLevel:
		level = "E"
	case log.FatalLevel:
		level = "F"
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", level, e.Message)
	return nil
}
