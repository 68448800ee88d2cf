package server

import (
	"time"

	"github.com/teranos/pseudocode/completion"
)

const (
	// MaxSessions is the maximum number of concurrent LSP WebSocket sessions
	MaxSessions = 100
	// ShutdownTimeout is how long to wait for in-flight HTTP requests on Stop
	ShutdownTimeout = 10 * time.Second
	// maxRequestBody caps the document accepted by /api/complete
	maxRequestBody = 1 << 20
)

// ServerState represents the server lifecycle state
type ServerState int32

const (
	ServerStateRunning  ServerState = iota // Normal operation
	ServerStateDraining                    // Graceful shutdown in progress
	ServerStateStopped                     // Shutdown complete
)

func (s ServerState) String() string {
	switch s {
	case ServerStateRunning:
		return "running"
	case ServerStateDraining:
		return "draining"
	case ServerStateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// HealthResponse is served at /health
type HealthResponse struct {
	Status    string         `json:"status"`
	State     string         `json:"state"`
	Version   string         `json:"version"`
	Commit    string         `json:"commit"`
	BuildTime string         `json:"build_time"`
	LSP       string         `json:"lsp"`
	Sessions  int            `json:"sessions"`
	Commands  map[string]int `json:"commands"`
	Macros    int            `json:"macros"`
}

// CatalogResponse is served at /api/catalog for one mode
type CatalogResponse struct {
	Mode    string             `json:"mode"`
	Count   int                `json:"count"`
	Entries []completion.Entry `json:"entries"`
}

// CompleteResponse is the answer of POST /api/complete
type CompleteResponse struct {
	Mode        string             `json:"mode,omitempty"`
	Context     string             `json:"context"`
	Suggestions []completion.Entry `json:"suggestions"`
}
