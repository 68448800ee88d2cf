// Package server serves the completion provider to editors: LSP over
// WebSocket at /lsp, LSP over stdio, and a small JSON API.
package server

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/pseudocode/am"
	"github.com/teranos/pseudocode/completion"
	"github.com/teranos/pseudocode/errors"
	"github.com/teranos/pseudocode/logger"
)

var (
	errSessionRefused = errors.New("server is not running")
	errSessionLimit   = errors.New("session limit reached")
)

// Server owns the HTTP listener, the active LSP sessions and the config
// watcher. The provider is shared by every session.
type Server struct {
	provider *completion.Provider
	config   atomic.Pointer[am.Config]
	limiter  atomic.Pointer[rate.Limiter] // nil admits every connection
	logger   *zap.SugaredLogger

	mu       sync.RWMutex
	sessions map[string]*session

	configWatcher *am.ConfigWatcher
	httpServer    *http.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	state  atomic.Int32
}

// session is one LSP WebSocket connection
type session struct {
	id     string
	remote string
	conn   *websocket.Conn
}

// Option configures a Server
type Option func(*Server)

// WithLogger replaces the component logger
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Server) {
		s.logger = log
	}
}

// New creates a server for provider. cfg must already be validated.
func New(cfg *am.Config, provider *completion.Provider, opts ...Option) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		provider: provider,
		logger:   logger.ComponentLogger("server"),
		sessions: make(map[string]*session),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.storeConfig(cfg)
	return s
}

// Config returns the config currently in effect
func (s *Server) Config() *am.Config {
	return s.config.Load()
}

// Provider returns the shared completion provider
func (s *Server) Provider() *completion.Provider {
	return s.provider
}

func (s *Server) storeConfig(cfg *am.Config) {
	s.config.Store(cfg)
	s.limiter.Store(newLimiter(cfg.Server.MaxConnectionsPerMinute))
}

// newLimiter admits perMinute connections a minute, bursting up to the same
// number. Zero means unlimited.
func newLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
}

// admit consumes one connection token
func (s *Server) admit() bool {
	limiter := s.limiter.Load()
	return limiter == nil || limiter.Allow()
}

// ApplyConfig installs a reloaded config: the macros file is re-read into a
// new bundle, swapped into the provider, and the connection limiter is
// rebuilt. Open sessions keep their document caches.
func (s *Server) ApplyConfig(cfg *am.Config) error {
	bundle, err := am.LoadBundle(cfg)
	if bundle != nil {
		s.provider.Swap(bundle)
	}
	s.storeConfig(cfg)
	logger.SetTheme(cfg.GetServerLogTheme())

	logger.PulseInfow("Completion bundle swapped",
		logger.FieldMacros, len(s.provider.Bundle().Macros))
	return err
}

// WatchConfig reloads the config files and the macros file on change.
// The macros path is the one configured at start; a new path takes effect
// on the next restart.
func (s *Server) WatchConfig() error {
	paths := append(am.ConfigPaths(), s.Config().Render.MacrosFile)
	watcher, err := am.NewConfigWatcher(paths...)
	if err != nil {
		return err
	}
	watcher.OnReload(s.ApplyConfig)
	watcher.Start()
	am.SetGlobalWatcher(watcher)

	s.mu.Lock()
	s.configWatcher = watcher
	s.mu.Unlock()
	return nil
}

// SessionCount returns the number of open LSP sessions
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// addSession registers a session while the server is running and the cap
// is not reached. A registered session holds the wait group until
// removeSession.
func (s *Server) addSession(sess *session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getState() != ServerStateRunning {
		return errSessionRefused
	}
	if len(s.sessions) >= MaxSessions {
		return errSessionLimit
	}
	s.sessions[sess.id] = sess
	s.wg.Add(1)
	return nil
}

func (s *Server) removeSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return
	}
	delete(s.sessions, id)
	s.wg.Done()
}
