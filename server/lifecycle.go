package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/teranos/pseudocode/errors"
	"github.com/teranos/pseudocode/logger"
	"github.com/teranos/pseudocode/sym"
)

// getState returns the current server state
func (s *Server) getState() ServerState {
	return ServerState(s.state.Load())
}

// setState atomically updates the server state
func (s *Server) setState(newState ServerState) {
	s.state.Store(int32(newState))
	s.logger.Infow("Server state changed", "new_state", newState.String())
}

// Start listens on port, or the first free port after it, and serves until
// Stop is called.
func (s *Server) Start(port int) error {
	actualPort, err := findAvailablePort(port)
	if err != nil {
		return errors.Wrap(err, "failed to find available port")
	}
	if actualPort != port {
		s.logger.Infow("Port in use, using alternative",
			"requested_port", port,
			"actual_port", actualPort,
		)
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", actualPort))
	if err != nil {
		return errors.Wrapf(err, "failed to listen on port %d", actualPort)
	}
	return s.Serve(ln)
}

// Serve serves on an existing listener. It returns nil after Stop.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	httpServer := s.httpServer
	s.mu.Unlock()

	s.setState(ServerStateRunning)
	logger.PulseOpenInfow(fmt.Sprintf("%s Language server ready", sym.Serve),
		logger.FieldAddress, "ws://"+ln.Addr().String()+"/lsp")

	err := httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop drains the server: the config watcher stops, open LSP sessions are
// closed and in-flight HTTP requests get ShutdownTimeout to finish.
func (s *Server) Stop() error {
	// Draining and the session snapshot share the lock with addSession, so
	// no session registers after the snapshot
	s.mu.Lock()
	if s.getState() != ServerStateRunning {
		s.mu.Unlock()
		return nil
	}
	s.setState(ServerStateDraining)
	watcher := s.configWatcher
	httpServer := s.httpServer
	sessions := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	if watcher != nil {
		if err := watcher.Stop(); err != nil {
			s.logger.Warnw("Config watcher stop failed", logger.FieldError, err)
		}
	}

	s.cancel()

	// Hijacked connections are not tracked by http.Server.Shutdown
	for _, sess := range sessions {
		_ = sess.conn.Close()
	}

	var shutdownErr error
	if httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			shutdownErr = errors.Wrap(err, "http shutdown")
		}
	}

	s.wg.Wait()
	s.setState(ServerStateStopped)
	logger.PulseCloseInfow(fmt.Sprintf("%s Language server stopped", sym.Serve),
		logger.FieldCount, len(sessions))
	return shutdownErr
}
