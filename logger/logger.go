package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance
var Logger *zap.SugaredLogger

// ThemeEnv overrides the configured console theme
const ThemeEnv = "PSEUDOCODE_LOG_THEME"

func init() {
	// No-op until InitializeWithOptions so packages can log from init and tests
	Logger = zap.NewNop().Sugar()
}

// Options controls logger construction
type Options struct {
	// JSON selects structured JSON output instead of the console encoder
	JSON bool
	// Verbosity is the -v count, mapped through VerbosityToLevel
	Verbosity int
	// Output defaults to stdout. Stdio transports (lsp, mcp) must pass
	// os.Stderr: stdout carries the protocol.
	Output io.Writer
	// Theme is the console palette, "everforest" or "gruvbox"
	Theme string
}

// InitializeWithOptions sets up the global logger
func InitializeWithOptions(opts Options) error {
	if opts.Theme != "" {
		SetTheme(opts.Theme)
	}
	if theme := os.Getenv(ThemeEnv); theme != "" {
		SetTheme(theme)
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	level := VerbosityToLevel(opts.Verbosity)

	Logger = zap.New(zapcore.NewCore(newEncoder(opts.JSON), zapcore.AddSync(out), level)).Sugar()
	return nil
}

func newEncoder(jsonOutput bool) zapcore.Encoder {
	if jsonOutput {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	return newMinimalEncoder()
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Infow logs an info message with structured fields
func Infow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

// Errorw logs an error message with structured fields
func Errorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Errorw(msg, keysAndValues...)
	}
}

// Warnw logs a warning message with structured fields
func Warnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

// Debugw logs a debug message with structured fields
func Debugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}
