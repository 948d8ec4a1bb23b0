package ai

import "sync/atomic"

// debugLoggingEnabled controls whether per-tick debug logging is enabled for agents.
// Checked before building log attributes so idle arenas pay nothing for it.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables agent debug logging.
// Called by the server after parsing its -log-level flag.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if debug logging is enabled.
// Use this to guard debug log calls on the tick path:
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("swing phase", "agent", name, "phase", phase)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
