package am

import (
	"strconv"
	"strings"

	"github.com/teranos/pseudocode/errors"
	"github.com/teranos/pseudocode/logger"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Server port: 0 is invalid (omit for default), negative or >65535 is invalid
	if c.Server.Port != nil && *c.Server.Port == 0 {
		return errors.Newf("server.port cannot be 0 (omit for default port %d)", DefaultServerPort)
	}
	if c.Server.Port != nil && (*c.Server.Port < 0 || *c.Server.Port > 65535) {
		return errors.Newf("server.port must be in 1..65535, got %d", *c.Server.Port)
	}

	if c.Server.LogTheme != "" && !validTheme(c.Server.LogTheme) {
		return errors.WithHintf(
			errors.Newf("server.log_theme %q is not a known theme", c.Server.LogTheme),
			"available themes: %s", strings.Join(logger.Themes, ", "))
	}

	// 0 = unlimited, negative = invalid
	if c.Server.MaxConnectionsPerMinute < 0 {
		return errors.Newf("server.max_connections_per_minute must be >= 0, got %d", c.Server.MaxConnectionsPerMinute)
	}

	// 0 = default, negative = invalid
	if c.LSP.MaxDocuments < 0 {
		return errors.Newf("lsp.max_documents must be >= 0, got %d", c.LSP.MaxDocuments)
	}

	if err := validateIndentSize(c.Render.IndentSize); err != nil {
		return err
	}
	if c.Render.CaptionCount < 0 {
		return errors.Newf("render.caption_count must be >= 0, got %d", c.Render.CaptionCount)
	}

	return nil
}

// validateIndentSize accepts a positive number followed by "em", or empty
func validateIndentSize(size string) error {
	if size == "" {
		return nil
	}
	number, ok := strings.CutSuffix(size, "em")
	if !ok {
		return errors.WithHint(
			errors.Newf("render.indent_size %q must be in em units", size),
			`for example indent_size = "1.2em"`)
	}
	f, err := strconv.ParseFloat(number, 64)
	if err != nil || f <= 0 {
		return errors.Newf("render.indent_size %q must be a positive number of em", size)
	}
	return nil
}

func validTheme(theme string) bool {
	for _, t := range logger.Themes {
		if t == theme {
			return true
		}
	}
	return false
}
