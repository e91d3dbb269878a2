package escape

import (
	"fmt"
	"io"
	"os"
)

// debugOut receives diagnostics while debug mode is on.
var debugOut io.Writer = os.Stderr

// globalDebug is shared by every Game; frontends toggle it once at startup.
var globalDebug bool

// SetDebugMode enables or disables diagnostic logging to stderr. When enabled,
// state transitions, restarts and timer bookkeeping are printed.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether diagnostic logging is enabled.
func DebugMode() bool {
	return globalDebug
}

// debugf prints one diagnostic line prefixed with the package tag.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[escape] "+format+"\n", args...)
}

// debugCheckTimers warns when more than one spawn timer is live, which would
// multiply the spawn rate.
func debugCheckTimers(c *Clock) {
	if !globalDebug || c == nil {
		return
	}
	if n := c.Active(); n > 1 {
		_, _ = fmt.Fprintf(debugOut, "[escape] warning: %d repeating timers live\n", n)
	}
}
