package logger

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/teranos/pseudocode/sym"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// palette is one console color theme
type palette struct {
	fg         string
	time       string
	id         string
	number     string
	symbol     string
	bracket    string
	lifecycle  string // starting, stopped, config
	client     string // connections and sessions
	completion string // completion and classification
	components []string
	warn       string
	warnBg     string
	err        string
	errBg      string
}

var palettes = map[string]palette{
	// Everforest Dark: forest greens with warm accents
	"everforest": {
		fg:         "\x1b[38;5;223m",
		time:       "\x1b[38;5;107m",
		id:         "\x1b[38;5;109m",
		number:     "\x1b[38;5;108m",
		symbol:     "\x1b[38;5;108m",
		bracket:    "\x1b[38;5;208m",
		lifecycle:  "\x1b[38;5;65m",
		client:     "\x1b[38;5;107m",
		completion: "\x1b[38;5;108m",
		components: []string{"\x1b[38;5;108m", "\x1b[38;5;65m", "\x1b[38;5;208m"},
		warn:       "\x1b[38;5;179m",
		warnBg:     "\x1b[48;5;58m",
		err:        "\x1b[38;5;167m",
		errBg:      "\x1b[48;5;52m",
	},
	// Gruvbox Dark: warm and muted
	"gruvbox": {
		fg:         "\x1b[38;5;223m",
		time:       "\x1b[38;5;108m",
		id:         "\x1b[38;5;109m",
		number:     "\x1b[38;5;175m",
		symbol:     "\x1b[38;5;142m",
		bracket:    "\x1b[38;5;208m",
		lifecycle:  "\x1b[38;5;208m",
		client:     "\x1b[38;5;109m",
		completion: "\x1b[38;5;142m",
		components: []string{"\x1b[38;5;208m", "\x1b[38;5;214m"},
		warn:       "\x1b[38;5;214m",
		warnBg:     "\x1b[48;5;58m",
		err:        "\x1b[38;5;167m",
		errBg:      "\x1b[48;5;88m",
	},
}

// Themes lists the accepted theme names
var Themes = []string{"everforest", "gruvbox"}

var currentTheme = "everforest"

// SetTheme configures the color scheme for console output.
// Unknown names are ignored and reported as false.
func SetTheme(theme string) bool {
	if _, ok := palettes[theme]; !ok {
		return false
	}
	currentTheme = theme
	return true
}

func activePalette() palette {
	return palettes[currentTheme]
}

// component picks a stable color per logger name
func (p palette) component(name string) string {
	hash := 0
	for _, c := range name {
		hash += int(c)
	}
	return p.components[hash%len(p.components)]
}

// message picks a color for a message from its wording
func (p palette) message(msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case containsAny(lower, "complet", "classif", "macro", "catalog", "hover"):
		return p.completion
	case containsAny(lower, "client", "connect", "websocket", "session", "document"):
		return p.client
	case containsAny(lower, "start", "stop", "shut", "config", "reload", "listen"):
		return p.lifecycle
	}
	return p.fg
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

var bracketPattern = regexp.MustCompile(`\[[^\]]+\]`)

// colorizeMessage colors bracketed markers like [session:ab12] and glyphs
// inside a message.
func colorizeMessage(msg string, p palette) string {
	base := p.message(msg)

	var b strings.Builder
	last := 0
	for _, m := range bracketPattern.FindAllStringIndex(msg, -1) {
		if text := msg[last:m[0]]; text != "" {
			b.WriteString(base + colorizeSymbols(text, p.symbol, base) + colorReset)
		}
		b.WriteString(p.bracket + msg[m[0]:m[1]] + colorReset)
		last = m[1]
	}
	if text := msg[last:]; text != "" {
		b.WriteString(base + colorizeSymbols(text, p.symbol, base) + colorReset)
	}
	return b.String()
}

var glyphs = []string{
	sym.AM, sym.Catalog, sym.Complete, sym.Serve, sym.MCP,
	sym.Pseudocode, sym.Math, sym.Macro,
	sym.Pulse, sym.PulseOpen, sym.PulseClose,
}

// colorizeSymbols highlights glyphs and restores the surrounding color
func colorizeSymbols(text, symbolColor, restore string) string {
	for _, g := range glyphs {
		if strings.Contains(text, g) {
			text = strings.ReplaceAll(text, g, symbolColor+g+restore)
		}
	}
	return text
}

func levelLabel(level zapcore.Level, p palette) string {
	switch level {
	case zapcore.DebugLevel:
		return p.fg + "debug" + colorReset
	case zapcore.InfoLevel:
		return ""
	case zapcore.WarnLevel:
		return colorBold + p.warnBg + p.warn + "WARN" + colorReset
	default:
		return colorBold + p.errBg + p.err + level.CapitalString() + colorReset
	}
}

// abbreviateName shortens component names: server.lsp -> s.lsp
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

var bufferPool = buffer.NewPool()

// minimalEncoder is a calm, compact console encoder with theme support.
// Format: "13:04:35  s.lsp  Completion served  session_id=4f1c mode=math count=862"
//
// Context fields added with Logger.With are kept in the embedded map
// encoder and printed before the entry's own fields.
type minimalEncoder struct {
	*zapcore.MapObjectEncoder
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := newMinimalEncoder()
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return clone
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	p := activePalette()
	line := bufferPool.Get()

	line.AppendString(p.time)
	line.AppendString(ent.Time.Format("15:04:05"))
	line.AppendString(colorReset)

	if label := levelLabel(ent.Level, p); label != "" {
		line.AppendString("  ")
		line.AppendString(label)
	}

	if ent.LoggerName != "" {
		line.AppendString("  ")
		line.AppendString(p.component(ent.LoggerName))
		line.AppendString(abbreviateName(ent.LoggerName))
		line.AppendString(colorReset)
	}

	line.AppendString("  ")
	line.AppendString(colorizeMessage(ent.Message, p))

	if rendered := enc.renderFields(fields, p); rendered != "" {
		line.AppendString("  ")
		line.AppendString(rendered)
	}

	line.AppendString("\n")
	return line, nil
}

// renderFields prints every field as key=value: context fields sorted by
// key, then the entry's fields in call order. A symbol field is shown as
// its bare glyph in front.
func (enc *minimalEncoder) renderFields(fields []zapcore.Field, p palette) string {
	local := zapcore.NewMapObjectEncoder()
	var order []string
	for _, f := range fields {
		if f.Type == zapcore.SkipType {
			continue
		}
		f.AddTo(local)
		order = append(order, f.Key)
	}

	ctxKeys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		ctxKeys = append(ctxKeys, k)
	}
	sort.Strings(ctxKeys)

	var glyph string
	var parts []string
	seen := make(map[string]bool)
	emit := func(key string, value interface{}) {
		if seen[key] || strings.HasSuffix(key, "Verbose") {
			return
		}
		seen[key] = true
		if key == FieldSymbol {
			glyph = p.symbol + fmt.Sprint(value) + colorReset
			return
		}
		parts = append(parts, formatField(key, value, p))
	}

	for _, k := range ctxKeys {
		emit(k, enc.Fields[k])
	}
	for _, k := range order {
		if v, ok := local.Fields[k]; ok {
			emit(k, v)
		}
	}

	if glyph != "" {
		parts = append([]string{glyph}, parts...)
	}
	return strings.Join(parts, " ")
}

func formatField(key string, value interface{}, p palette) string {
	text := fmt.Sprint(value)
	switch key {
	case FieldSessionID, FieldRequestID, FieldURI:
		text = p.id + text + colorReset
	case FieldDurationMS:
		text = p.number + text + colorReset + "ms"
	case FieldCount, FieldLength, FieldMacros:
		text = p.number + text + colorReset
	}
	return p.fg + key + "=" + colorReset + text
}
