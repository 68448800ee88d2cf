package server

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// checkOrigin validates a browser origin against server.allowed_origins.
// Scheme and host must match; an allowed origin without a port admits any
// port on that host.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	// Direct WebSocket clients (editors, tests) send no origin
	if origin == "" {
		return true
	}
	return originAllowed(origin, s.Config().GetServerAllowedOrigins())
}

func originAllowed(origin string, allowed []string) bool {
	o, err := url.Parse(origin)
	if err != nil || o.Host == "" {
		return false
	}
	for _, candidate := range allowed {
		a, err := url.Parse(strings.TrimSuffix(candidate, "/"))
		if err != nil || a.Host == "" {
			continue
		}
		if !strings.EqualFold(a.Scheme, o.Scheme) || !strings.EqualFold(a.Hostname(), o.Hostname()) {
			continue
		}
		if a.Port() == "" || a.Port() == o.Port() {
			return true
		}
	}
	return false
}

// isPortAvailable checks if a port is available for binding
func isPortAvailable(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	_ = listener.Close() // Best-effort check, the real bind may still race
	return true
}

// findAvailablePort tries the requested port first, then the next 10
func findAvailablePort(requestedPort int) (int, error) {
	for port := requestedPort; port <= requestedPort+10 && port <= 65535; port++ {
		if isPortAvailable(port) {
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available ports found (tried %d-%d)", requestedPort, requestedPort+10)
}
