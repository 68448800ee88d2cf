package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/teranos/pseudocode/sym"
)

// captureLogger points the global logger at a buffer for one test
func captureLogger(t *testing.T, opts Options) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	opts.Output = &buf
	require.NoError(t, InitializeWithOptions(opts))
	t.Cleanup(func() {
		Logger = zap.NewNop().Sugar()
	})
	return &buf
}

func TestInitializeWritesToOutput(t *testing.T) {
	buf := captureLogger(t, Options{Verbosity: VerbosityInfo})

	Infow("Server started", FieldPort, 8877)
	Debugw("hidden at info level")

	out := stripANSI(buf.String())
	assert.Contains(t, out, "Server started")
	assert.Contains(t, out, "port=8877")
	assert.NotContains(t, out, "hidden")
}

func TestInitializeJSON(t *testing.T) {
	buf := captureLogger(t, Options{JSON: true, Verbosity: VerbosityDebug})

	Debugw("Completion served", FieldMode, "math", FieldCount, 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Completion served", entry["msg"])
	assert.Equal(t, "math", entry["mode"])
	assert.Equal(t, float64(3), entry["count"])
}

func TestVerbosityFiltersLevels(t *testing.T) {
	buf := captureLogger(t, Options{Verbosity: VerbosityUser})

	Infow("quiet")
	Warnw("loud")

	out := stripANSI(buf.String())
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "loud")
}

func TestThemeFromEnvironment(t *testing.T) {
	t.Setenv(ThemeEnv, "gruvbox")
	captureLogger(t, Options{Theme: "everforest"})
	assert.Equal(t, "gruvbox", currentTheme)

	assert.False(t, SetTheme("solarized"))
	assert.Equal(t, "gruvbox", currentTheme)
	assert.True(t, SetTheme("everforest"))
}

func TestSymbolHelpers(t *testing.T) {
	buf := captureLogger(t, Options{Verbosity: VerbosityInfo})

	MacroWarnw("Custom macros ignored", FieldFile, "macros.toml")
	AMInfow("Configuration loaded")
	PulseInfow("Reloaded")

	lines := strings.Split(strings.TrimSpace(stripANSI(buf.String())), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], sym.Macro+" file=macros.toml")
	assert.Contains(t, lines[1], sym.AM)
	assert.Contains(t, lines[2], sym.Pulse)
}

func TestContextFields(t *testing.T) {
	buf := captureLogger(t, Options{Verbosity: VerbosityInfo})

	ctx := WithSessionID(context.Background(), "4f1c")
	ctx = WithComponent(ctx, "lsp")
	LoggerFromContext(ctx, nil).Infow("Client connected")

	out := stripANSI(buf.String())
	assert.Contains(t, out, "session_id=4f1c")
	assert.Contains(t, out, "component=lsp")

	assert.Empty(t, FieldsFromContext(context.Background()))
	assert.Same(t, Logger, LoggerFromContext(context.Background(), nil))

	parent := ComponentLogger("server")
	assert.Same(t, parent, LoggerFromContext(context.Background(), parent))
}

func TestComponentLogger(t *testing.T) {
	buf := captureLogger(t, Options{Verbosity: VerbosityInfo})

	log := ChildLogger(ComponentLogger("server.lsp"), FieldSessionID, "ab12")
	log.Infow("Document opened", FieldURI, "file:///a.tex")

	out := stripANSI(buf.String())
	assert.Contains(t, out, "s.lsp")
	assert.Contains(t, out, "session_id=ab12 uri=file:///a.tex")
}

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(0))
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(-1))
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(1))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(2))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(7))
	assert.Equal(t, "All (-vvvv+)", LevelName(9))
}

func TestShouldOutput(t *testing.T) {
	tests := []struct {
		category OutputCategory
		visible  int
	}{
		{OutputResults, VerbosityUser},
		{OutputStartup, VerbosityInfo},
		{OutputCompletions, VerbosityDebug},
		{OutputProtocol, VerbosityTrace},
		{OutputSuggestions, VerbosityAll},
	}
	for _, tt := range tests {
		name := CategoryName(tt.category)
		assert.True(t, ShouldOutput(tt.visible, tt.category), name)
		if tt.visible > 0 {
			assert.False(t, ShouldOutput(tt.visible-1, tt.category), name)
		}
	}
	assert.Equal(t, "unknown", CategoryName(OutputCategory(99)))
	assert.False(t, ShouldOutput(VerbosityTrace, OutputCategory(99)))
}
