package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	lru "github.com/hashicorp/golang-lru"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"
	"go.uber.org/zap"

	"github.com/teranos/pseudocode/am"
	"github.com/teranos/pseudocode/completion"
	"github.com/teranos/pseudocode/errors"
	"github.com/teranos/pseudocode/internal/util"
	"github.com/teranos/pseudocode/logger"
	"github.com/teranos/pseudocode/sym"
	"github.com/teranos/pseudocode/version"
)

// serverName is reported to clients in InitializeResult
const serverName = "pseudocode"

// GLSPHandler implements the LSP handlers for one connection. Open documents
// live in an LRU cache; the least recently used one is dropped when the
// client opens more than the configured maximum.
type GLSPHandler struct {
	provider  *completion.Provider
	documents *lru.Cache // URI → document text
	logger    *zap.SugaredLogger
}

// NewGLSPHandler creates a handler serving provider
func NewGLSPHandler(provider *completion.Provider, maxDocuments int, log *zap.SugaredLogger) (*GLSPHandler, error) {
	documents, err := lru.New(maxDocuments)
	if err != nil {
		return nil, errors.Wrapf(err, "document cache of size %d", maxDocuments)
	}
	return &GLSPHandler{
		provider:  provider,
		documents: documents,
		logger:    log,
	}, nil
}

// ProtocolHandler wires the handler methods into a glsp protocol handler
func (h *GLSPHandler) ProtocolHandler() *protocol.Handler {
	return &protocol.Handler{
		Initialize:             h.Initialize,
		Initialized:            h.Initialized,
		Shutdown:               h.Shutdown,
		SetTrace:               h.SetTrace,
		TextDocumentDidOpen:    h.TextDocumentDidOpen,
		TextDocumentDidChange:  h.TextDocumentDidChange,
		TextDocumentDidClose:   h.TextDocumentDidClose,
		TextDocumentCompletion: h.TextDocumentCompletion,
		TextDocumentHover:      h.TextDocumentHover,
	}
}

// Initialize handles LSP initialize request
func (h *GLSPHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	client := "unknown"
	if params.ClientInfo != nil {
		client = params.ClientInfo.Name
	}
	h.logger.Infow("LSP client initializing", logger.FieldClient, client)

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities := protocol.ServerCapabilities{
		CompletionProvider: &protocol.CompletionOptions{
			TriggerCharacters: completion.TriggerCharacters,
		},
		HoverProvider: &protocol.HoverOptions{},
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			OpenClose: util.Ptr(true),
			Change:    &syncKind,
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: util.Ptr(version.Get().Version),
		},
	}, nil
}

// Initialized is called after client receives InitializeResult
func (h *GLSPHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.logger.Debugw("LSP client initialized")
	return nil
}

// Shutdown handles LSP shutdown request
func (h *GLSPHandler) Shutdown(ctx *glsp.Context) error {
	h.logger.Infow("LSP client shutting down", logger.FieldCount, h.documents.Len())
	h.documents.Purge()
	return nil
}

// SetTrace handles $/setTrace
func (h *GLSPHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles document open notifications
func (h *GLSPHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if evicted := h.documents.Add(uri, params.TextDocument.Text); evicted {
		h.logger.Debugw("Document cache full, dropped least recently used document")
	}

	h.logger.Debugw("Document opened",
		logger.FieldURI, uri,
		logger.FieldLength, len(params.TextDocument.Text),
		logger.FieldCount, h.documents.Len(),
	)
	return nil
}

// TextDocumentDidChange handles document change notifications. Only full
// document sync is advertised, so every change carries the whole text.
func (h *GLSPHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)

	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			h.documents.Add(uri, whole.Text)
		}
	}

	h.logger.Debugw("Document changed",
		logger.FieldURI, uri,
		"changes", len(params.ContentChanges),
	)
	return nil
}

// TextDocumentDidClose handles document close notifications
func (h *GLSPHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	h.documents.Remove(uri)
	h.logger.Debugw("Document closed", logger.FieldURI, uri)
	return nil
}

// document returns the cached text of uri
func (h *GLSPHandler) document(uri protocol.DocumentUri) (string, bool) {
	v, ok := h.documents.Get(string(uri))
	if !ok {
		return "", false
	}
	text, ok := v.(string)
	return text, ok
}

// TextDocumentCompletion answers with the pseudocode or math set, or the
// math starters, depending on the text before the cursor
func (h *GLSPHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (result any, err error) {
	// A panic in the provider must not kill the connection
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorw("Panic in completion handler",
				"panic", r,
				logger.FieldURI, params.TextDocument.URI,
			)
			result = []protocol.CompletionItem{}
			err = nil
		}
	}()

	text, ok := h.document(params.TextDocument.URI)
	if !ok {
		return []protocol.CompletionItem{}, nil
	}

	req := completion.Request{
		Text: text,
		Position: completion.Position{
			Line:      int(params.Position.Line),
			Character: int(params.Position.Character),
		},
	}
	if params.Context != nil && params.Context.TriggerCharacter != nil {
		req.Trigger = *params.Context.TriggerCharacter
	}

	res := h.provider.Complete(req)

	h.logger.Debugw("LSP completion",
		logger.FieldURI, params.TextDocument.URI,
		logger.FieldTrigger, req.Trigger,
		logger.FieldContext, res.Context.String(),
		logger.FieldMode, res.Mode,
		logger.FieldCount, len(res.Suggestions),
	)

	return toCompletionItems(res), nil
}

// TextDocumentHover describes the command under the cursor
func (h *GLSPHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (result *protocol.Hover, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorw("Panic in hover handler",
				"panic", r,
				logger.FieldURI, params.TextDocument.URI,
			)
			result = nil
			err = nil
		}
	}()

	text, ok := h.document(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	offset := completion.Offset(text, completion.Position{
		Line:      int(params.Position.Line),
		Character: int(params.Position.Character),
	})
	info, ok := h.provider.Describe(text, offset)
	if !ok {
		return nil, nil
	}

	h.logger.Debugw("LSP hover", logger.FieldSymbol, info.Label, logger.FieldMode, info.Mode)

	start := completion.PositionAt(text, info.Start)
	end := completion.PositionAt(text, info.End)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: hoverMarkdown(info),
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(start.Line), Character: protocol.UInteger(start.Character)},
			End:   protocol.Position{Line: protocol.UInteger(end.Line), Character: protocol.UInteger(end.Character)},
		},
	}, nil
}

// toCompletionItems converts a provider result. Every insert text is a
// snippet; a bare command is a snippet without placeholders.
func toCompletionItems(res completion.Result) []protocol.CompletionItem {
	format := protocol.InsertTextFormatSnippet
	items := make([]protocol.CompletionItem, len(res.Suggestions))
	for i, e := range res.Suggestions {
		items[i] = protocol.CompletionItem{
			Label:            e.Label,
			Kind:             mapCompletionKind(e.Kind),
			Detail:           util.PtrOrNil(string(res.Mode)),
			InsertText:       util.PtrOrNil(e.InsertText),
			InsertTextFormat: &format,
			SortText:         util.PtrOrNil(e.SortText),
		}
	}
	return items
}

// hoverMarkdown renders what is known about a command
func hoverMarkdown(info completion.Info) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** %s %s\n", info.Label, sym.ModeGlyph(string(info.Mode)), info.Mode)

	for _, s := range info.Symbols {
		fmt.Fprintf(&b, "\n- %s %s: %s, %s", sym.ModeGlyph(string(s.Mode)), s.Mode, s.Category, s.Shape)
		if s.Arity > 0 {
			fmt.Fprintf(&b, ", %d slot(s)", s.Arity)
		}
	}
	if info.Macro != nil {
		fmt.Fprintf(&b, "\n- %s macro: `%s`", sym.Macro, info.Macro.Expansion)
	}
	if info.Entry != nil {
		fmt.Fprintf(&b, "\n\n```\n%s\n```", info.Entry.InsertText)
	}
	return b.String()
}

// mapCompletionKind maps entry kinds to LSP CompletionItemKind
func mapCompletionKind(kind completion.Kind) *protocol.CompletionItemKind {
	var k protocol.CompletionItemKind
	switch kind {
	case completion.KindFunction:
		k = protocol.CompletionItemKindFunction
	case completion.KindSnippet:
		k = protocol.CompletionItemKindSnippet
	default:
		k = protocol.CompletionItemKindText
	}
	return &k
}

// HandleGLSPWebSocket upgrades HTTP to WebSocket and serves LSP on it
func (s *Server) HandleGLSPWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.getState() != ServerStateRunning {
		writeError(w, http.StatusServiceUnavailable, "Server is shutting down")
		return
	}
	if !s.admit() {
		s.logger.Warnw("LSP connection rate limited", "remote", r.RemoteAddr)
		writeError(w, http.StatusTooManyRequests, "Too many connections, retry later")
		return
	}

	sess := &session{id: uuid.NewString(), remote: r.RemoteAddr}
	ctx := logger.WithComponent(logger.WithSessionID(r.Context(), sess.id), "lsp")
	log := logger.ChildLogger(logger.LoggerFromContext(ctx, s.logger), logger.FieldClient, r.RemoteAddr)

	handler, err := NewGLSPHandler(s.provider, s.Config().GetMaxDocuments(), log)
	if err != nil {
		log.Errorw("Failed to create LSP handler", logger.FieldError, err)
		writeError(w, http.StatusInternalServerError, "Failed to create LSP handler")
		return
	}

	upgrader := websocket.Upgrader{CheckOrigin: s.checkOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		log.Warnw("Failed to upgrade WebSocket", logger.FieldError, err)
		return
	}
	sess.conn = conn

	if err := s.addSession(sess); err != nil {
		code, reason := websocket.CloseGoingAway, "server is shutting down"
		if errors.Is(err, errSessionLimit) {
			code, reason = websocket.CloseTryAgainLater, "too many sessions"
		}
		log.Warnw("LSP session refused", logger.FieldError, err, "max_sessions", MaxSessions)
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason))
		_ = conn.Close()
		return
	}
	defer s.removeSession(sess.id)

	log.Infow("LSP session opened")

	// Blocks until the connection closes
	glspserver.NewServer(handler.ProtocolHandler(), serverName, false).ServeWebSocket(conn)

	log.Infow("LSP session closed")
}

// RunStdio serves LSP on stdin/stdout until the client exits. Logging must
// already go to stderr.
func RunStdio(cfg *am.Config, provider *completion.Provider) error {
	handler, err := NewGLSPHandler(provider, cfg.GetMaxDocuments(), logger.ComponentLogger("lsp"))
	if err != nil {
		return err
	}
	return glspserver.NewServer(handler.ProtocolHandler(), serverName, false).RunStdio()
}
