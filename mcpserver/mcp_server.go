// Package mcpserver exposes the completion provider to agents as Model
// Context Protocol tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/teranos/pseudocode/catalog"
	"github.com/teranos/pseudocode/completion"
	"github.com/teranos/pseudocode/errors"
	"github.com/teranos/pseudocode/logger"
	"github.com/teranos/pseudocode/sym"
	"github.com/teranos/pseudocode/version"
)

// Tool names
const (
	ToolComplete = "pseudocode_complete"
	ToolClassify = "pseudocode_classify"
	ToolHover    = "pseudocode_hover"
	ToolLookup   = "pseudocode_lookup"
)

// MCPServer serves completion tools. Documents are passed inline as text or
// read from a file under the workspace root.
type MCPServer struct {
	provider      *completion.Provider
	workspaceRoot string
	server        *server.MCPServer
	logger        *zap.SugaredLogger
}

// NewMCPServer creates the tool server
func NewMCPServer(provider *completion.Provider, workspaceRoot string) *MCPServer {
	s := &MCPServer{
		provider:      provider,
		workspaceRoot: workspaceRoot,
		logger:        logger.SymbolLogger(logger.ComponentLogger("mcp"), sym.MCP),
	}

	s.server = server.NewMCPServer(
		"pseudocode",
		version.Get().Version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

// documentOptions are the arguments shared by every positional tool
func documentOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("text",
			mcp.Description("Document text. Either text or file is required"),
		),
		mcp.WithString("file",
			mcp.Description("File path relative to workspace root, read when text is absent"),
		),
		mcp.WithNumber("line",
			mcp.Required(),
			mcp.Description("Line number (zero-based)"),
		),
		mcp.WithNumber("character",
			mcp.Required(),
			mcp.Description("Character offset in UTF-16 code units (zero-based)"),
		),
	}
}

func (s *MCPServer) registerTools() {
	completeTool := mcp.NewTool(ToolComplete, append([]mcp.ToolOption{
		mcp.WithDescription("Completion suggestions for pseudocode or KaTeX math at a cursor. " +
			"Suggestions follow a backslash or a single dollar sign."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of suggestions to return (default: all)"),
		),
		mcp.WithString("prefix",
			mcp.Description("Only return suggestions whose label starts with this prefix, escape included"),
		),
	}, documentOptions()...)...)
	s.server.AddTool(completeTool, s.handleComplete)

	classifyTool := mcp.NewTool(ToolClassify, append([]mcp.ToolOption{
		mcp.WithDescription("Classify the cursor context: none, inline ($...$) or display ($$...$$) math"),
	}, documentOptions()...)...)
	s.server.AddTool(classifyTool, s.handleClassify)

	hoverTool := mcp.NewTool(ToolHover, append([]mcp.ToolOption{
		mcp.WithDescription("Describe the command under the cursor: catalog category, shape, arity and insertion template"),
	}, documentOptions()...)...)
	s.server.AddTool(hoverTool, s.handleHover)

	lookupTool := mcp.NewTool(ToolLookup,
		mcp.WithDescription("Look up a command by name in the pseudocode and math catalogs"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description(`Command name, with or without the leading backslash (e.g. "frac", "\\IF")`),
		),
	)
	s.server.AddTool(lookupTool, s.handleLookup)
}

// document resolves the text and byte offset a positional tool works on
func (s *MCPServer) document(request mcp.CallToolRequest) (string, int, error) {
	line, err := request.RequireInt("line")
	if err != nil {
		return "", 0, err
	}
	character, err := request.RequireInt("character")
	if err != nil {
		return "", 0, err
	}
	if line < 0 || character < 0 {
		return "", 0, errors.NewInvalidRequestError("line and character must be non-negative")
	}

	text, err := s.documentText(request)
	if err != nil {
		return "", 0, err
	}
	return text, completion.Offset(text, completion.Position{Line: line, Character: character}), nil
}

func (s *MCPServer) documentText(request mcp.CallToolRequest) (string, error) {
	args := request.GetArguments()
	if text, ok := args["text"].(string); ok {
		return text, nil
	}

	file := request.GetString("file", "")
	if file == "" {
		return "", errors.NewInvalidRequestError("either text or file is required")
	}
	path, err := s.resolve(file)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", file)
	}
	return string(data), nil
}

// resolve maps a workspace-relative path and refuses paths that leave the
// workspace root, including through symlinks. A path that does not exist is
// returned unresolved; reading it fails.
func (s *MCPServer) resolve(file string) (string, error) {
	root, err := filepath.Abs(s.workspaceRoot)
	if err != nil {
		return "", errors.Wrap(err, "workspace root")
	}
	path := filepath.Join(root, file)
	if !within(root, path) {
		return "", errors.NewInvalidRequestError("%s is outside the workspace", file)
	}

	resolved, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", file)
	}
	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", errors.Wrap(err, "workspace root")
	}
	if !within(realRoot, resolved) {
		return "", errors.NewInvalidRequestError("%s is outside the workspace", file)
	}
	return resolved, nil
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// completeResult is the JSON body of a pseudocode_complete result
type completeResult struct {
	Mode        string             `json:"mode,omitempty"`
	Context     string             `json:"context"`
	Total       int                `json:"total"`
	Suggestions []completion.Entry `json:"suggestions"`
}

func (s *MCPServer) handleComplete(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, offset, err := s.document(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := s.provider.CompleteAt(text, offset)
	suggestions := res.Suggestions

	if prefix := request.GetString("prefix", ""); prefix != "" {
		filtered := suggestions[:0]
		for _, e := range suggestions {
			if strings.HasPrefix(e.Label, prefix) {
				filtered = append(filtered, e)
			}
		}
		suggestions = filtered
	}
	total := len(suggestions)
	if limit := request.GetInt("limit", 0); limit > 0 && limit < len(suggestions) {
		suggestions = suggestions[:limit]
	}

	s.logger.Debugw("MCP completion",
		logger.FieldTool, ToolComplete,
		logger.FieldMode, res.Mode,
		logger.FieldCount, total)

	return jsonResult(completeResult{
		Mode:        string(res.Mode),
		Context:     res.Context.String(),
		Total:       total,
		Suggestions: suggestions,
	})
}

func (s *MCPServer) handleClassify(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, offset, err := s.document(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(s.provider.Classify(text, offset).String()), nil
}

func (s *MCPServer) handleHover(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, offset, err := s.document(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	info, ok := s.provider.Describe(text, offset)
	if !ok {
		return mcp.NewToolResultText("No command at this position"), nil
	}
	return jsonResult(info)
}

// lookupResult pairs a catalog symbol with the entry it completes to
type lookupResult struct {
	catalog.Symbol
	InsertText string `json:"insertText,omitempty"`
}

func (s *MCPServer) handleLookup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	symbols := catalog.Lookup(name)
	bundle := s.provider.Bundle()

	results := make([]lookupResult, 0, len(symbols))
	for _, symbol := range symbols {
		r := lookupResult{Symbol: symbol}
		if e, ok := bundle.Set(symbol.Mode).Get(symbol.Label()); ok {
			r.InsertText = e.InsertText
		}
		results = append(results, r)
	}

	// Custom macros are math-only and have no catalog symbol
	label := catalog.EscapeChar + strings.TrimPrefix(name, catalog.EscapeChar)
	for _, m := range bundle.Macros {
		if m.Label() == label {
			results = append(results, lookupResult{
				Symbol:     catalog.Symbol{Name: m.Name, Mode: catalog.ModeMath, Category: "Custom Macros", Shape: "args", Arity: m.Arity()},
				InsertText: m.Entry().InsertText,
			})
		}
	}

	if len(results) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown command: %s", label)), nil
	}
	return jsonResult(results)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// Serve starts the MCP server using stdio transport
func (s *MCPServer) Serve() error {
	return server.ServeStdio(s.server)
}
