package am

import "github.com/teranos/pseudocode/completion"

// RenderOptions is the option object pseudocode.js takes, served to browser
// widgets so rendering matches what completion offers
type RenderOptions struct {
	IndentSize       string            `json:"indentSize"`
	CommentDelimiter string            `json:"commentDelimiter"`
	LineNumber       bool              `json:"lineNumber"`
	LineNumberPunc   string            `json:"lineNumberPunc"`
	NoEnd            bool              `json:"noEnd"`
	CaptionCount     int               `json:"captionCount"`
	KatexMacros      map[string]string `json:"katexMacros"`
}

// RenderOptions returns the render section with the bundle's macros keyed
// as KaTeX expects them (\name)
func (c *Config) RenderOptions(bundle *completion.Bundle) RenderOptions {
	opts := RenderOptions{
		IndentSize:       c.Render.IndentSize,
		CommentDelimiter: c.Render.CommentDelimiter,
		LineNumber:       c.Render.LineNumber,
		LineNumberPunc:   c.Render.LineNumberPunc,
		NoEnd:            c.Render.NoEnd,
		CaptionCount:     c.Render.CaptionCount,
		KatexMacros:      map[string]string{},
	}
	if opts.IndentSize == "" {
		opts.IndentSize = DefaultIndentSize
	}
	if opts.CommentDelimiter == "" {
		opts.CommentDelimiter = DefaultCommentDelimiter
	}
	if opts.LineNumberPunc == "" {
		opts.LineNumberPunc = DefaultLineNumberPunc
	}

	if bundle != nil {
		for _, m := range bundle.Macros {
			opts.KatexMacros[m.Label()] = m.Expansion
		}
	}
	return opts
}
