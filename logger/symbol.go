package logger

import (
	"go.uber.org/zap"

	"github.com/teranos/pseudocode/sym"
)

// Symbol-aware logging helpers. The glyph goes into the symbol field, not
// the message, so logs stay queryable by symbol.
//
//	logger.MacroWarnw("Macros ignored", "error", err)
//
// instead of
//
//	logger.Warnw(sym.Macro+" Macros ignored", "error", err)

func withSymbol(glyph string, keysAndValues []interface{}) []interface{} {
	return append([]interface{}{FieldSymbol, glyph}, keysAndValues...)
}

// SymbolLogger returns log with a glyph attached to every entry
func SymbolLogger(log *zap.SugaredLogger, glyph string) *zap.SugaredLogger {
	return log.With(FieldSymbol, glyph)
}

// AMInfow logs configuration events with the AM symbol (≡)
func AMInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, withSymbol(sym.AM, keysAndValues)...)
	}
}

// AMWarnw logs configuration problems with the AM symbol (≡)
func AMWarnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, withSymbol(sym.AM, keysAndValues)...)
	}
}

// MacroInfow logs custom macro events with the Macro symbol (♯)
func MacroInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, withSymbol(sym.Macro, keysAndValues)...)
	}
}

// MacroWarnw logs rejected macro tables with the Macro symbol (♯)
func MacroWarnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, withSymbol(sym.Macro, keysAndValues)...)
	}
}

// PulseInfow logs file watching and reload events with the Pulse symbol (꩜)
func PulseInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, withSymbol(sym.Pulse, keysAndValues)...)
	}
}

// PulseWarnw logs failed reloads with the Pulse symbol (꩜)
func PulseWarnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, withSymbol(sym.Pulse, keysAndValues)...)
	}
}

// PulseOpenInfow logs startup with the PulseOpen symbol (✿)
func PulseOpenInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, withSymbol(sym.PulseOpen, keysAndValues)...)
	}
}

// PulseCloseInfow logs shutdown with the PulseClose symbol (❀)
func PulseCloseInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, withSymbol(sym.PulseClose, keysAndValues)...)
	}
}
