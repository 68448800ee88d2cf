package completion

import (
	"strings"
	"sync/atomic"

	"github.com/teranos/pseudocode/catalog"
	"github.com/teranos/pseudocode/mathenv"
)

// TriggerCharacters are the characters that make an editor ask for completions
var TriggerCharacters = []string{catalog.EscapeChar, "$"}

// Request is one completion request
type Request struct {
	Text     string   `json:"text"`
	Position Position `json:"position"`
	// Trigger is the character that caused the request. It is informational;
	// routing depends on the text before the cursor only.
	Trigger string `json:"trigger,omitempty"`
}

// Result is the answer to a Request
type Result struct {
	// Context is the classified context; None when classification was not reached
	Context mathenv.Context `json:"-"`
	// Mode is the set the suggestions come from. Math starters report
	// ModeMath; an empty result has no mode.
	Mode        catalog.Mode `json:"mode,omitempty"`
	Suggestions []Entry      `json:"suggestions"`
}

// MathStarters are offered after a lone $ to open a math region
func MathStarters() []Entry {
	return []Entry{
		newEntry("$ math-inline $", "$1$", KindFunction),
		newEntry("$$ math-block $$", "$\n\t$1\n$$", KindSnippet),
	}
}

// Provider answers completion requests from a frozen Bundle
type Provider struct {
	bundle     atomic.Pointer[Bundle]
	classifier mathenv.Classifier
}

// Option configures a Provider
type Option func(*Provider)

// WithClassifier replaces the default heuristic classifier
func WithClassifier(c mathenv.Classifier) Option {
	return func(p *Provider) {
		p.classifier = c
	}
}

// NewProvider creates a provider serving bundle
func NewProvider(bundle *Bundle, opts ...Option) *Provider {
	p := &Provider{classifier: mathenv.Heuristic{}}
	for _, opt := range opts {
		opt(p)
	}
	p.bundle.Store(bundle)
	return p
}

// Bundle returns the bundle currently served
func (p *Provider) Bundle() *Bundle {
	return p.bundle.Load()
}

// Swap installs a new bundle for subsequent requests and returns the old one.
// Results already handed out are copies and are unaffected.
func (p *Provider) Swap(bundle *Bundle) *Bundle {
	return p.bundle.Swap(bundle)
}

// Classify reports the math context at a byte offset using the provider's
// classifier
func (p *Provider) Classify(text string, offset int) mathenv.Context {
	return p.classifier.Classify(text, offset)
}

// Complete answers a request addressed by line and UTF-16 character
func (p *Provider) Complete(req Request) Result {
	return p.CompleteAt(req.Text, Offset(req.Text, req.Position))
}

// CompleteAt answers a request addressed by byte offset.
//
// A command escape (an odd run of backslashes) before the cursor selects the
// math or pseudocode set by context. A lone unescaped $ offers the math
// starters. Anything else gets no suggestions.
func (p *Provider) CompleteAt(text string, offset int) Result {
	lineBefore, _ := mathenv.LineAround(text, offset)

	switch {
	case endsWithCommandEscape(lineBefore):
		ctx := p.classifier.Classify(text, offset)
		bundle := p.Bundle()
		if ctx.IsMath() {
			return Result{Context: ctx, Mode: catalog.ModeMath, Suggestions: bundle.Math.Entries()}
		}
		return Result{Context: ctx, Mode: catalog.ModePseudocode, Suggestions: bundle.Pseudocode.Entries()}

	case endsWithLoneDollar(lineBefore):
		return Result{Mode: catalog.ModeMath, Suggestions: MathStarters()}
	}

	return Result{Suggestions: []Entry{}}
}

// trailingBackslashes counts the backslashes at the end of s
func trailingBackslashes(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n
}

// endsWithCommandEscape reports whether s ends in an unescaped backslash.
// "\\" is a line break, "\\\" starts a command again.
func endsWithCommandEscape(s string) bool {
	return trailingBackslashes(s)%2 == 1
}

// endsWithLoneDollar reports whether s ends in a $ that is neither part of
// $$ nor escaped as \$.
func endsWithLoneDollar(s string) bool {
	rest, ok := strings.CutSuffix(s, "$")
	if !ok {
		return false
	}
	if strings.HasSuffix(rest, "$") {
		return false
	}
	return trailingBackslashes(rest)%2 == 0
}
