package completion

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/pseudocode/catalog"
	"github.com/teranos/pseudocode/errors"
)

func TestSortKey(t *testing.T) {
	assert.Equal(t, "0a0b0c", SortKey("abc"))
	assert.Equal(t, "1a0b0c", SortKey("Abc"))
	assert.Equal(t, "1a1b1c", SortKey("ABC"))
	assert.Equal(t, "0a0b1c", SortKey("abC"))
	assert.Equal(t, `\1i1f`, SortKey(`\IF`))
	assert.Equal(t, "$ 0m0a0t0h-0i0n0l0i0n0e $", SortKey("$ math-inline $"))
}

func TestSortKeyOrdersLowercaseFirst(t *testing.T) {
	labels := []string{"ABC", "abC", "Abc", "abc"}
	sort.Slice(labels, func(i, j int) bool { return SortKey(labels[i]) < SortKey(labels[j]) })
	assert.Equal(t, []string{"abc", "abC", "Abc", "ABC"}, labels)
}

func TestTemplate(t *testing.T) {
	tests := []struct {
		name  string
		cmd   string
		shape catalog.Shape
		arity int
		envs  []string
		want  string
	}{
		{"bare", "STATE", catalog.ShapeBare, 0, nil, "STATE"},
		{"one arg", "caption", catalog.ShapeArgs, 1, nil, "caption{$1}"},
		{"two args", "CALL", catalog.ShapeArgs, 2, nil, "CALL{$1}{$2}"},
		{"block", "IF", catalog.ShapeBlock, 2, nil, "IF{$1}\n\t$2\n\\ENDIF"},
		{"block with two args", "FUNCTION", catalog.ShapeBlock, 3, nil, "FUNCTION{$1}{$2}\n\t$3\n\\ENDFUNCTION"},
		{"block end marker is upper-cased", "while", catalog.ShapeBlock, 2, nil, "while{$1}\n\t$2\n\\ENDWHILE"},
		{"continuation", "ELSEIF", catalog.ShapeContinuation, 2, nil, "ELSEIF{$1}\n\t$2"},
		{"repeat until", "REPEAT", catalog.ShapeRepeatUntil, 2, nil, "REPEAT\n\t$2\n\\UNTIL{$1}"},
		{"if else", "IFELSE", catalog.ShapeIfElse, 3, nil, "IF{$1}\n\t$2\n\\else\n\t$3\n\\ENDIF"},
		{"environment", "", catalog.ShapeEnvironment, 2, []string{"algorithm", "algorithmic"}, "begin{${1|algorithm,algorithmic|}}\n\t$2\n\\end{$1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Template(tt.cmd, tt.shape, tt.arity, tt.envs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateErrors(t *testing.T) {
	_, err := Template("IF", catalog.ShapeBlock, 0, nil)
	assert.Error(t, err)

	_, err = Template("", catalog.ShapeEnvironment, 2, nil)
	assert.Error(t, err)

	_, err = Template("x", catalog.Shape(42), 0, nil)
	assert.Error(t, err)
}

func TestBuildPseudocode(t *testing.T) {
	set, err := Build(catalog.ModePseudocode)
	require.NoError(t, err)
	assert.Equal(t, catalog.Count(catalog.ModePseudocode), set.Len())

	want := map[string]Entry{
		`\STATE`:     {Label: `\STATE`, InsertText: "STATE", Kind: KindFunction, SortText: `\1s1t1a1t1e`},
		`\caption`:   {Label: `\caption`, InsertText: "caption{$1}", Kind: KindFunction, SortText: `\0c0a0p0t0i0o0n`},
		`\IF`:        {Label: `\IF`, InsertText: "IF{$1}\n\t$2\n\\ENDIF", Kind: KindSnippet, SortText: `\1i1f`},
		`\PROCEDURE`: {Label: `\PROCEDURE`, InsertText: "PROCEDURE{$1}{$2}\n\t$3\n\\ENDPROCEDURE", Kind: KindSnippet, SortText: SortKey(`\PROCEDURE`)},
		`\CALL`:      {Label: `\CALL`, InsertText: "CALL{$1}{$2}", Kind: KindFunction, SortText: SortKey(`\CALL`)},
		`\IFELSE`:    {Label: `\IFELSE`, InsertText: "IF{$1}\n\t$2\n\\else\n\t$3\n\\ENDIF", Kind: KindSnippet, SortText: SortKey(`\IFELSE`)},
		`\begin`:     {Label: `\begin`, InsertText: "begin{${1|algorithm,algorithmic|}}\n\t$2\n\\end{$1}", Kind: KindSnippet, SortText: SortKey(`\begin`)},
	}
	for label, entry := range want {
		got, ok := set.Get(label)
		require.True(t, ok, label)
		assert.Equal(t, entry, got, label)
	}

	labels := set.Labels()
	assert.Equal(t, `\REQUIRE`, labels[0])
	assert.Equal(t, `\begin`, labels[len(labels)-1])
}

func TestBuildMath(t *testing.T) {
	set, err := Build(catalog.ModeMath)
	require.NoError(t, err)
	assert.Equal(t, catalog.Count(catalog.ModeMath), set.Len())

	frac, ok := set.Get(`\frac`)
	require.True(t, ok)
	assert.Equal(t, "frac{$1}{$2}", frac.InsertText)

	sqrt, ok := set.Get(`\sqrt`)
	require.True(t, ok)
	assert.Equal(t, "sqrt{$1}", sqrt.InsertText)

	alpha, ok := set.Get(`\alpha`)
	require.True(t, ok)
	assert.Equal(t, "alpha", alpha.InsertText)

	begin, ok := set.Get(`\begin`)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(begin.InsertText, "begin{${1|matrix,array,"))
	assert.Equal(t, KindSnippet, begin.Kind)

	_, err = Build(catalog.Mode("latex"))
	assert.True(t, errors.IsInvalidRequestError(err))
}

func TestLabelsUnique(t *testing.T) {
	b := MustBundle()
	for _, set := range []*Set{b.Pseudocode, b.Math} {
		seen := make(map[string]bool)
		for _, e := range set.Entries() {
			assert.False(t, seen[e.Label], "duplicate label %s", e.Label)
			seen[e.Label] = true
		}
	}
}

func TestEveryBlockHasEndMarker(t *testing.T) {
	set := MustBundle().Pseudocode
	for _, g := range catalog.Groups(catalog.ModePseudocode) {
		if g.Shape != catalog.ShapeBlock {
			continue
		}
		for _, name := range g.Names {
			e, ok := set.Get(catalog.EscapeChar + name)
			require.True(t, ok, name)
			assert.True(t, strings.HasSuffix(e.InsertText, `\END`+strings.ToUpper(name)), e.InsertText)
		}
	}
}

func TestEntriesAreCopies(t *testing.T) {
	b := MustBundle()

	first := b.Pseudocode.Entries()
	first[0].Label = "mutated"
	first[0].InsertText = "mutated"

	second := b.Pseudocode.Entries()
	assert.Equal(t, `\REQUIRE`, second[0].Label)
	assert.Equal(t, "REQUIRE", second[0].InsertText)
	assert.Equal(t, b.Pseudocode.Len(), len(second))
}

func TestDeterministic(t *testing.T) {
	macros := map[string]string{
		`\RR`:   `\mathbb{R}`,
		`\pair`: `\langle #1, #2 \rangle`,
		`skip`:  `#1 + #3`,
	}

	a, err := NewBundle(macros)
	require.NoError(t, err)
	b, err := NewBundle(macros)
	require.NoError(t, err)

	for _, pair := range [][2]*Set{{a.Pseudocode, b.Pseudocode}, {a.Math, b.Math}} {
		ja, err := json.Marshal(pair[0])
		require.NoError(t, err)
		jb, err := json.Marshal(pair[1])
		require.NoError(t, err)
		assert.Equal(t, ja, jb)
	}
}

func TestMarshalJSONShape(t *testing.T) {
	data, err := json.Marshal(MustBundle().Pseudocode)
	require.NoError(t, err)

	var raw []map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	require.NotEmpty(t, raw)
	assert.Equal(t, map[string]string{
		"label":      `\REQUIRE`,
		"insertText": "REQUIRE",
		"kind":       "function",
		"sortText":   `\1r1e1q1u1i1r1e`,
	}, raw[0])
}

func TestNilSet(t *testing.T) {
	var s *Set
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Entries())
	_, ok := s.Get(`\IF`)
	assert.False(t, ok)
}
