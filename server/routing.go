package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/teranos/pseudocode/logger"
)

// requestIDHeader carries the id that ties a response to its log lines
const requestIDHeader = "X-Request-ID"

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/lsp", s.corsMiddleware(s.HandleGLSPWebSocket)) // LSP over WebSocket (completion, hover)
	mux.HandleFunc("/health", s.corsMiddleware(s.HandleHealth))
	mux.HandleFunc("/api/catalog", s.corsMiddleware(s.HandleCatalog))
	mux.HandleFunc("/api/complete", s.corsMiddleware(s.HandleComplete))
	mux.HandleFunc("/api/render-options", s.corsMiddleware(s.HandleRenderOptions)) // pseudocode.js options incl. katexMacros
	return mux
}

// corsMiddleware answers preflight requests and echoes allowed origins
func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" && s.checkOrigin(r) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", requestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	}
}
