package logging

import (
	"fmt"
	"os"
)

var verbose bool

// EnableVerbose turns debug output on regardless of the environment.
// The CLI calls this when the verbose configuration flag is set.
func EnableVerbose() {
	verbose = true
}

// DebugEnabled returns true if debug mode is enabled via the PUNCH_DEBUG
// environment variable or EnableVerbose
func DebugEnabled() bool {
	return verbose || os.Getenv("PUNCH_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(os.Stderr, args...)
	}
}
