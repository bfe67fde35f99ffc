package logging

import (
	"fmt"
	"io"
	"os"
)

// debugOutput receives Debugf and Debugln output.
var debugOutput io.Writer = os.Stderr

// SetDebugOutput redirects Debugf and Debugln and returns a func restoring
// the previous writer.
func SetDebugOutput(w io.Writer) (restore func()) {
	previous := debugOutput
	debugOutput = w
	return func() { debugOutput = previous }
}

// DebugEnabled returns true if debug mode is enabled via VT_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("VT_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(debugOutput, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(debugOutput, args...)
	}
}
