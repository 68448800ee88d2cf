package logger

import "go.uber.org/zap/zapcore"

// Verbosity levels for CLI flag counts (-v, -vv, ...).
//
// These levels control WHAT categories of output are shown, not just log
// severity. See output.go for the category system.
//
//	if logger.ShouldOutput(verbosity, logger.OutputCompletions) {
//	    log.Debugw("Completion served", "count", len(items))
//	}
const (
	VerbosityUser  = 0 // No flags: results and errors only
	VerbosityInfo  = 1 // -v: + startup, connections, reloads
	VerbosityDebug = 2 // -vv: + every completion request, timing, config
	VerbosityTrace = 3 // -vvv: + protocol messages and classification
	VerbosityAll   = 4 // -vvvv: + full documents and result dumps
)

// VerbosityToLevel maps verbosity flags to zap log levels
//
//	0 (none)  -> WarnLevel
//	1 (-v)    -> InfoLevel
//	2+ (-vv)  -> DebugLevel
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// LevelName returns a human-readable name for verbosity level
func LevelName(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "User"
	case VerbosityInfo:
		return "Info (-v)"
	case VerbosityDebug:
		return "Debug (-vv)"
	case VerbosityTrace:
		return "Trace (-vvv)"
	case VerbosityAll:
		return "All (-vvvv)"
	default:
		if verbosity > VerbosityAll {
			return "All (-vvvv+)"
		}
		return "Unknown"
	}
}
