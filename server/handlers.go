package server

// HTTP endpoints besides /lsp:
// - /health: liveness, build and catalog summary
// - /api/catalog: the completion sets, or the catalog entries of one command
// - /api/complete: one-shot completion for a document and position
// - /api/render-options: pseudocode.js render options with the macro table

import (
	"net/http"

	"github.com/teranos/pseudocode/catalog"
	"github.com/teranos/pseudocode/completion"
	"github.com/teranos/pseudocode/errors"
	"github.com/teranos/pseudocode/logger"
	"github.com/teranos/pseudocode/version"
)

// HandleHealth reports status, build info and open sessions
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	versionInfo := version.Get()
	health := HealthResponse{
		Status:    "ok",
		State:     s.getState().String(),
		Version:   versionInfo.Version,
		Commit:    versionInfo.CommitHash,
		BuildTime: versionInfo.BuildTime,
		LSP:       versionInfo.LSP,
		Sessions:  s.SessionCount(),
		Commands:  versionInfo.Commands,
		Macros:    len(s.provider.Bundle().Macros),
	}

	writeJSON(w, http.StatusOK, health)
}

// HandleCatalog serves GET /api/catalog.
//
//	?name=frac          catalog entries for \frac in every mode (404 if none)
//	?mode=math          the math completion set, custom macros included
//	(no parameters)     both sets keyed by mode
func (s *Server) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	query := r.URL.Query()

	if name := query.Get("name"); name != "" {
		symbols := catalog.Lookup(name)
		if len(symbols) == 0 {
			writeFailure(w, errors.WithHint(
				errors.Wrapf(errors.ErrNotFound, "unknown command %q", name),
				"GET /api/catalog?mode=math lists every math command"))
			return
		}
		writeJSON(w, http.StatusOK, symbols)
		return
	}

	bundle := s.provider.Bundle()
	if m := query.Get("mode"); m != "" {
		mode, err := catalog.ParseMode(m)
		if err != nil {
			writeFailure(w, errors.WithHint(err, "modes: pseudocode, math"))
			return
		}
		writeJSON(w, http.StatusOK, catalogResponse(bundle, mode))
		return
	}

	all := make(map[string]CatalogResponse)
	for _, mode := range catalog.Modes() {
		all[string(mode)] = catalogResponse(bundle, mode)
	}
	writeJSON(w, http.StatusOK, all)
}

func catalogResponse(bundle *completion.Bundle, mode catalog.Mode) CatalogResponse {
	set := bundle.Set(mode)
	return CatalogResponse{
		Mode:    string(mode),
		Count:   set.Len(),
		Entries: set.Entries(),
	}
}

// HandleComplete serves POST /api/complete with a completion.Request body
func (s *Server) HandleComplete(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req completion.Request
	if err := readJSON(w, r, &req); err != nil {
		logger.LoggerFromContext(r.Context(), s.logger).Debugw("Rejected completion request", logger.FieldError, err)
		writeFailure(w, err)
		return
	}
	if req.Position.Line < 0 || req.Position.Character < 0 {
		writeFailure(w, errors.NewInvalidRequestError("position must be non-negative"))
		return
	}

	res := s.provider.Complete(req)
	logger.LoggerFromContext(r.Context(), s.logger).Debugw("Completion served",
		logger.FieldMode, string(res.Mode),
		logger.FieldContext, res.Context.String(),
		logger.FieldCount, len(res.Suggestions))
	writeJSON(w, http.StatusOK, CompleteResponse{
		Mode:        string(res.Mode),
		Context:     res.Context.String(),
		Suggestions: res.Suggestions,
	})
}

// HandleRenderOptions serves the render options a pseudocode.js widget needs
func (s *Server) HandleRenderOptions(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, s.Config().RenderOptions(s.provider.Bundle()))
}
