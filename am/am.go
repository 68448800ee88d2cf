// Package am loads the pseudocode configuration ("am" is the configuration
// command). Values cascade from built-in defaults through system, user and
// project am.toml files to PSEUDOCODE_* environment variables.
package am

// Config represents the pseudocode configuration
type Config struct {
	Server ServerConfig `mapstructure:"server" json:"server" yaml:"server" toml:"server"`
	LSP    LSPConfig    `mapstructure:"lsp" json:"lsp" yaml:"lsp" toml:"lsp"`
	Render RenderConfig `mapstructure:"render" json:"render" yaml:"render" toml:"render"`
}

// ServerConfig configures the HTTP/WebSocket server
type ServerConfig struct {
	Port           *int     `mapstructure:"port" json:"port" yaml:"port" toml:"port"` // nil = DefaultServerPort, 0 is invalid
	AllowedOrigins []string `mapstructure:"allowed_origins" json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
	LogTheme       string   `mapstructure:"log_theme" json:"log_theme" yaml:"log_theme" toml:"log_theme"` // everforest, gruvbox

	// MaxConnectionsPerMinute limits new WebSocket sessions; 0 = unlimited
	MaxConnectionsPerMinute int `mapstructure:"max_connections_per_minute" json:"max_connections_per_minute" yaml:"max_connections_per_minute" toml:"max_connections_per_minute"`
}

// LSPConfig configures the language server
type LSPConfig struct {
	MaxDocuments int `mapstructure:"max_documents" json:"max_documents" yaml:"max_documents" toml:"max_documents"` // per connection, LRU evicted
}

// RenderConfig mirrors the pseudocode.js render options.
// See https://github.com/SaswatPadhi/pseudocode.js#options
type RenderConfig struct {
	IndentSize       string `mapstructure:"indent_size" json:"indent_size" yaml:"indent_size" toml:"indent_size"` // must end in "em"
	CommentDelimiter string `mapstructure:"comment_delimiter" json:"comment_delimiter" yaml:"comment_delimiter" toml:"comment_delimiter"`
	LineNumber       bool   `mapstructure:"line_number" json:"line_number" yaml:"line_number" toml:"line_number"`
	LineNumberPunc   string `mapstructure:"line_number_punc" json:"line_number_punc" yaml:"line_number_punc" toml:"line_number_punc"`
	NoEnd            bool   `mapstructure:"no_end" json:"no_end" yaml:"no_end" toml:"no_end"`
	CaptionCount     int    `mapstructure:"caption_count" json:"caption_count" yaml:"caption_count" toml:"caption_count"`

	// MacrosFile holds KaTeX macros (TOML, YAML or JSON). Macro names are
	// case-sensitive, so they live in their own file instead of am.toml.
	MacrosFile string `mapstructure:"macros_file" json:"macros_file" yaml:"macros_file" toml:"macros_file"`
}

// Server defaults
const (
	DefaultServerPort   = 8877
	DefaultMaxDocuments = 100
	DefaultLogTheme     = "everforest"
)

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Config file names and locations
const (
	ConfigFileName = "am.toml"
	EnvPrefix      = "PSEUDOCODE"
	SystemConfig   = "/etc/pseudocode/am.toml"
	userDirName    = ".pseudocode"
)
