package am

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultAllowedOrigins are the browser origins accepted by the /lsp endpoint
var DefaultAllowedOrigins = []string{
	"http://localhost",
	"https://localhost",
	"http://127.0.0.1",
	"https://127.0.0.1",
}

// Render defaults, matching pseudocode.js
const (
	DefaultIndentSize       = "1.2em"
	DefaultCommentDelimiter = "//"
	DefaultLineNumberPunc   = ":"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.allowed_origins", DefaultAllowedOrigins)
	v.SetDefault("server.log_theme", DefaultLogTheme)
	v.SetDefault("server.max_connections_per_minute", 60)

	// LSP
	v.SetDefault("lsp.max_documents", DefaultMaxDocuments)

	// Render
	v.SetDefault("render.indent_size", DefaultIndentSize)
	v.SetDefault("render.comment_delimiter", DefaultCommentDelimiter)
	v.SetDefault("render.line_number", true)
	v.SetDefault("render.line_number_punc", DefaultLineNumberPunc)
	v.SetDefault("render.no_end", false)
	v.SetDefault("render.caption_count", 0)
	v.SetDefault("render.macros_file", "")
}

// envAliases are short env names accepted next to PSEUDOCODE_SECTION_KEY
var envAliases = map[string][]string{
	"server.port":        {"PSEUDOCODE_PORT"},
	"server.log_theme":   {"PSEUDOCODE_LOG_THEME"},
	"render.macros_file": {"PSEUDOCODE_MACROS"},
}

// BindEnvVars binds settings that also accept a short env alias
func BindEnvVars(v *viper.Viper) {
	for key, aliases := range envAliases {
		_ = v.BindEnv(append([]string{key, EnvName(key)}, aliases...)...)
	}
}

// EnvName returns the canonical env variable for a dotted key
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// GetServerPort returns the configured port, or DefaultServerPort
func (c *Config) GetServerPort() int {
	if c.Server.Port == nil {
		return DefaultServerPort
	}
	return *c.Server.Port
}

// GetServerAllowedOrigins returns the allowed WebSocket origins
func (c *Config) GetServerAllowedOrigins() []string {
	if len(c.Server.AllowedOrigins) == 0 {
		return DefaultAllowedOrigins
	}
	return c.Server.AllowedOrigins
}

// GetServerLogTheme returns the log theme (default: everforest)
func (c *Config) GetServerLogTheme() string {
	if c.Server.LogTheme == "" {
		return DefaultLogTheme
	}
	return c.Server.LogTheme
}

// GetMaxDocuments returns the per-connection document limit
func (c *Config) GetMaxDocuments() int {
	if c.LSP.MaxDocuments <= 0 {
		return DefaultMaxDocuments
	}
	return c.LSP.MaxDocuments
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Server: {Port: %d, LogTheme: %s}, LSP: {MaxDocuments: %d}, Render: {MacrosFile: %q}}",
		c.GetServerPort(), c.GetServerLogTheme(), c.GetMaxDocuments(), c.Render.MacrosFile)
}
