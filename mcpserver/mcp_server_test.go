package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/pseudocode/completion"
)

func newTestServer(t *testing.T) *MCPServer {
	t.Helper()
	bundle, err := completion.NewBundle(map[string]string{"RR": `\mathbb{R}`})
	require.NoError(t, err)
	return NewMCPServer(completion.NewProvider(bundle), t.TempDir())
}

func callTool(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// resultText returns the text of a single-content tool result
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleComplete(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleComplete(context.Background(), callTool(ToolComplete, map[string]any{
		"text":      "$x = \\",
		"line":      0,
		"character": 6,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out completeResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, "math", out.Mode)
	assert.Equal(t, "inline", out.Context)
	assert.Equal(t, out.Total, len(out.Suggestions))
	assert.Positive(t, out.Total)
}

func TestHandleCompletePrefixAndLimit(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleComplete(context.Background(), callTool(ToolComplete, map[string]any{
		"text":      "$\\",
		"line":      0,
		"character": 2,
		"prefix":    `\R`,
		"limit":     1,
	}))
	require.NoError(t, err)

	var out completeResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	require.Len(t, out.Suggestions, 1)
	assert.GreaterOrEqual(t, out.Total, 1)
	assert.Regexp(t, `^\\R`, out.Suggestions[0].Label)
}

func TestHandleCompleteStarters(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleComplete(context.Background(), callTool(ToolComplete, map[string]any{
		"text": "let $", "line": 0, "character": 5,
	}))
	require.NoError(t, err)

	var out completeResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, "$ math-inline $", out.Suggestions[0].Label)
}

func TestHandleCompleteFromFile(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.workspaceRoot, "algo.tex"), []byte("\\begin{algorithmic}\n\\"), 0644))

	res, err := s.handleComplete(context.Background(), callTool(ToolComplete, map[string]any{
		"file": "algo.tex", "line": 1, "character": 1,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var out completeResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, "pseudocode", out.Mode)
}

func TestHandleCompleteErrors(t *testing.T) {
	s := newTestServer(t)

	tests := map[string]map[string]any{
		"missing line":      {"text": "x", "character": 0},
		"missing document":  {"line": 0, "character": 0},
		"negative position": {"text": "x", "line": -1, "character": 0},
		"missing file":      {"file": "nope.tex", "line": 0, "character": 0},
		"escapes workspace": {"file": "../outside.tex", "line": 0, "character": 0},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := s.handleComplete(context.Background(), callTool(ToolComplete, args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestHandleClassify(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		text     string
		line, ch int
		want     string
	}{
		{"\\STATE x", 0, 3, "none"},
		{"$a + b$", 0, 3, "inline"},
		{"$$\na + b\n$$", 1, 2, "display"},
	}
	for _, tt := range tests {
		res, err := s.handleClassify(context.Background(), callTool(ToolClassify, map[string]any{
			"text": tt.text, "line": tt.line, "character": tt.ch,
		}))
		require.NoError(t, err)
		assert.Equal(t, tt.want, resultText(t, res), tt.text)
	}
}

func TestHandleHover(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleHover(context.Background(), callTool(ToolHover, map[string]any{
		"text": "$\\RR$", "line": 0, "character": 2,
	}))
	require.NoError(t, err)

	var info completion.Info
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &info))
	assert.Equal(t, `\RR`, info.Label)
	require.NotNil(t, info.Macro)
	assert.Equal(t, `\mathbb{R}`, info.Macro.Expansion)

	res, err = s.handleHover(context.Background(), callTool(ToolHover, map[string]any{
		"text": "plain", "line": 0, "character": 2,
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "No command at this position", resultText(t, res))
}

func TestHandleLookup(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleLookup(context.Background(), callTool(ToolLookup, map[string]any{"name": "frac"}))
	require.NoError(t, err)
	var out []lookupResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	require.NotEmpty(t, out)
	assert.Equal(t, "frac{$1}{$2}", out[0].InsertText)

	res, err = s.handleLookup(context.Background(), callTool(ToolLookup, map[string]any{"name": `\RR`}))
	require.NoError(t, err)
	out = nil
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Custom Macros", out[0].Category)
	assert.Equal(t, "RR", out[0].InsertText)

	res, err = s.handleLookup(context.Background(), callTool(ToolLookup, map[string]any{"name": "nosuch"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleLookup(context.Background(), callTool(ToolLookup, map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestResolve(t *testing.T) {
	s := &MCPServer{workspaceRoot: "/work"}

	path, err := s.resolve("docs/algo.tex")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work", "docs", "algo.tex"), path)

	_, err = s.resolve("../etc/passwd")
	assert.Error(t, err)

	path, err = s.resolve("..hidden/file.tex")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work", "..hidden", "file.tex"), path)
}

func TestResolveFollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.tex"), []byte(`\STATE`), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "algo.tex"), []byte(`\FOR`), 0644))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "escape")))
	require.NoError(t, os.Symlink(filepath.Join(root, "docs"), filepath.Join(root, "alias")))

	s := NewMCPServer(completion.NewProvider(completion.MustBundle()), root)

	_, err := s.resolve("escape/secret.tex")
	assert.Error(t, err)

	path, err := s.resolve("alias/algo.tex")
	require.NoError(t, err)
	realRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(realRoot, "docs", "algo.tex"), path)

	res, err := s.handleComplete(context.Background(), callTool(ToolComplete, map[string]any{
		"file": "escape/secret.tex", "line": 0, "character": 1,
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "outside the workspace")
}
