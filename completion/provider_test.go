package completion

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/pseudocode/catalog"
	"github.com/teranos/pseudocode/mathenv"
)

// at builds a request from text with | marking the cursor
func at(marked string) Request {
	i := strings.Index(marked, "|")
	text := marked[:i] + marked[i+1:]
	return Request{Text: text, Position: PositionAt(text, i)}
}

func labelsOf(entries []Entry) []string {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	return labels
}

func TestCompleteRouting(t *testing.T) {
	p := NewProvider(MustBundle())

	tests := []struct {
		name    string
		marked  string
		mode    catalog.Mode
		context mathenv.Context
		empty   bool
	}{
		{"command in plain text", "\\STATE x\n\\|", catalog.ModePseudocode, mathenv.None, false},
		{"command inside inline math", `\STATE $x + \| $`, catalog.ModeMath, mathenv.Inline, false},
		{"command inside display math", "$$\n\\|\n$$", catalog.ModeMath, mathenv.Display, false},
		{"line break is not a command", `a \\|`, "", mathenv.None, true},
		{"escaped backslash then command", `a \\\|`, catalog.ModePseudocode, mathenv.None, false},
		{"lone dollar", `cost is $|`, catalog.ModeMath, mathenv.None, false},
		{"dollar at line start", `$|`, catalog.ModeMath, mathenv.None, false},
		{"double dollar", `$$|`, "", mathenv.None, true},
		{"escaped dollar", `price \$|`, "", mathenv.None, true},
		{"plain text", `\STATE x|`, "", mathenv.None, true},
		{"empty document", `|`, "", mathenv.None, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Complete(at(tt.marked))
			assert.Equal(t, tt.mode, res.Mode)
			assert.Equal(t, tt.context, res.Context)
			assert.NotNil(t, res.Suggestions)
			if tt.empty {
				assert.Empty(t, res.Suggestions)
			} else {
				assert.NotEmpty(t, res.Suggestions)
			}
		})
	}
}

func TestCompleteEndToEnd(t *testing.T) {
	p := NewProvider(MustBundle())

	res := p.Complete(Request{Text: `\`, Position: Position{Line: 0, Character: 1}, Trigger: `\`})
	require.Equal(t, catalog.ModePseudocode, res.Mode)

	var found bool
	for _, e := range res.Suggestions {
		if e.Label == `\IF` {
			found = true
			assert.Equal(t, "IF{$1}\n\t$2\n\\ENDIF", e.InsertText)
		}
	}
	assert.True(t, found, "conditional offered")
}

func TestMathStarters(t *testing.T) {
	p := NewProvider(MustBundle())
	res := p.Complete(at(`Let $|`))

	require.Len(t, res.Suggestions, 2)
	assert.Equal(t, Entry{Label: "$ math-inline $", InsertText: "$1$", Kind: KindFunction, SortText: "$ 0m0a0t0h-0i0n0l0i0n0e $"}, res.Suggestions[0])
	assert.Equal(t, "$$ math-block $$", res.Suggestions[1].Label)
	assert.Equal(t, "$\n\t$1\n$$", res.Suggestions[1].InsertText)
	assert.Equal(t, KindSnippet, res.Suggestions[1].Kind)
}

func TestTriggerDoesNotRoute(t *testing.T) {
	p := NewProvider(MustBundle())

	for _, marked := range []string{`\|`, `$|`, `x|`, `$\alpha \| $`} {
		req := at(marked)
		var results []Result
		for _, trigger := range append([]string{""}, TriggerCharacters...) {
			req.Trigger = trigger
			results = append(results, p.Complete(req))
		}
		for _, r := range results[1:] {
			assert.Equal(t, results[0].Mode, r.Mode, marked)
			assert.Equal(t, labelsOf(results[0].Suggestions), labelsOf(r.Suggestions), marked)
		}
	}
}

func TestCompleteReturnsCopies(t *testing.T) {
	p := NewProvider(MustBundle())

	first := p.Complete(at(`\|`))
	for i := range first.Suggestions {
		first.Suggestions[i].InsertText = ""
	}

	second := p.Complete(at(`\|`))
	for _, e := range second.Suggestions {
		assert.NotEmpty(t, e.InsertText, e.Label)
	}
}

func TestCompleteConcurrent(t *testing.T) {
	p := NewProvider(MustBundle())
	want := labelsOf(p.Complete(at(`\|`)).Suggestions)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := p.Complete(at(`\|`))
			res.Suggestions[0].Label = "mutated"
			assert.Equal(t, want[1:], labelsOf(res.Suggestions)[1:])
		}()
	}
	wg.Wait()

	assert.Equal(t, want, labelsOf(p.Complete(at(`\|`)).Suggestions))
}

func TestSwap(t *testing.T) {
	base := MustBundle()
	p := NewProvider(base)

	before := p.Complete(at(`$\| $`))
	withMacros, err := NewBundle(map[string]string{`\RR`: `\mathbb{R}`})
	require.NoError(t, err)

	old := p.Swap(withMacros)
	assert.Same(t, base, old)
	assert.Same(t, withMacros, p.Bundle())

	after := p.Complete(at(`$\| $`))
	assert.Contains(t, labelsOf(after.Suggestions), `\RR`)
	assert.NotContains(t, labelsOf(before.Suggestions), `\RR`)
}

type fixedClassifier mathenv.Context

func (c fixedClassifier) Classify(string, int) mathenv.Context {
	return mathenv.Context(c)
}

func TestWithClassifier(t *testing.T) {
	p := NewProvider(MustBundle(), WithClassifier(fixedClassifier(mathenv.Display)))
	res := p.Complete(at(`\|`))
	assert.Equal(t, catalog.ModeMath, res.Mode)
	assert.Equal(t, mathenv.Display, res.Context)
}

func TestOffset(t *testing.T) {
	text := "a\n😀\\x\nlast"

	assert.Equal(t, 0, Offset(text, Position{}))
	assert.Equal(t, 2, Offset(text, Position{Line: 1}))
	assert.Equal(t, 6, Offset(text, Position{Line: 1, Character: 2}), "surrogate pair counts as two units")
	assert.Equal(t, 7, Offset(text, Position{Line: 1, Character: 3}))
	assert.Equal(t, 8, Offset(text, Position{Line: 1, Character: 99}), "clamped to end of line")
	assert.Equal(t, len(text), Offset(text, Position{Line: 9}))
	assert.Equal(t, 0, Offset(text, Position{Line: -1}))

	for _, off := range []int{0, 2, 6, 7, 8, len(text)} {
		assert.Equal(t, off, Offset(text, PositionAt(text, off)), "round trip %d", off)
	}
}
