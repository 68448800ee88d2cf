package am

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/pseudocode/errors"
)

func TestLoadMacros(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		want    map[string]string
	}{
		{
			name:    "toml",
			file:    "macros.toml",
			content: "\"\\\\RR\" = \"\\\\mathbb{R}\"\npair = \"\\\\langle #1, #2 \\\\rangle\"\n",
			want:    map[string]string{`\RR`: `\mathbb{R}`, "pair": `\langle #1, #2 \rangle`},
		},
		{
			name:    "yaml",
			file:    "macros.yaml",
			content: "'\\RR': '\\mathbb{R}'\nabs: '\\left| #1 \\right|'\n",
			want:    map[string]string{`\RR`: `\mathbb{R}`, "abs": `\left| #1 \right|`},
		},
		{
			name:    "json",
			file:    "macros.json",
			content: `{"\\NN": "\\mathbb{N}"}`,
			want:    map[string]string{`\NN`: `\mathbb{N}`},
		},
		{
			name:    "empty yaml",
			file:    "empty.yml",
			content: "",
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeFile(t, path, tt.content)

			got, err := LoadMacros(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadMacrosEmptyPath(t *testing.T) {
	got, err := LoadMacros("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadMacrosErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		file      string
		content   string
		wantMacro bool
	}{
		{"nested toml table", "nested.toml", "[group]\nRR = \"x\"\n", true},
		{"number value", "number.yaml", "RR: 3\n", true},
		{"list root", "list.yaml", "- RR\n- NN\n", true},
		{"broken toml", "broken.toml", "RR = \n", true},
		{"broken json", "broken.json", `{"RR": `, true},
		{"unknown extension", "macros.ini", "RR=x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeFile(t, path, tt.content)

			_, err := LoadMacros(path)
			require.Error(t, err)
			assert.Equal(t, tt.wantMacro, errors.IsInvalidMacroError(err), "%v", err)
		})
	}

	_, err := LoadMacros(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestLoadBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macros.toml")
	writeFile(t, path, "RR = \"\\\\mathbb{R}\"\n")

	bundle, err := LoadBundle(&Config{Render: RenderConfig{MacrosFile: path}})
	require.NoError(t, err)
	require.Len(t, bundle.Macros, 1)

	entry, ok := bundle.Math.Get(`\RR`)
	require.True(t, ok)
	assert.Equal(t, "RR", entry.InsertText)
}

func TestLoadBundleFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macros.yaml")
	writeFile(t, path, "RR: [1, 2]\n")

	bundle, err := LoadBundle(&Config{Render: RenderConfig{MacrosFile: path}})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidMacroError(err))

	require.NotNil(t, bundle, "a usable bundle is returned alongside the error")
	assert.Empty(t, bundle.Macros)
	assert.Positive(t, bundle.Math.Len())
	assert.Positive(t, bundle.Pseudocode.Len())

	bundle, err = LoadBundle(&Config{Render: RenderConfig{MacrosFile: filepath.Join(t.TempDir(), "gone.toml")}})
	require.Error(t, err)
	require.NotNil(t, bundle)
}

func TestRenderOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macros.toml")
	writeFile(t, path, "RR = \"\\\\mathbb{R}\"\n")

	cfg := &Config{Render: RenderConfig{LineNumber: true, CaptionCount: 2, MacrosFile: path}}
	bundle, err := LoadBundle(cfg)
	require.NoError(t, err)

	opts := cfg.RenderOptions(bundle)
	assert.Equal(t, RenderOptions{
		IndentSize:       "1.2em",
		CommentDelimiter: "//",
		LineNumber:       true,
		LineNumberPunc:   ":",
		CaptionCount:     2,
		KatexMacros:      map[string]string{`\RR`: `\mathbb{R}`},
	}, opts)

	assert.NotNil(t, cfg.RenderOptions(nil).KatexMacros, "macros serialize as {} not null")
}
