// Package http exposes the tracker over a JSON API. It only translates
// between the wire and the tracker's envelopes; all semantics live below.
package http

import (
	"context"
	"net"
	"net/http"
	"strings"

	"kharcha/internal/middleware/trace"
	"kharcha/internal/tracker"
)

// Server hosts the JSON API.
type Server struct {
	*http.Server
	svc     *tracker.Service
	limiter *rateLimiter
}

// NewServer assembles the route table and middleware chain. Timeouts are
// left for the caller to set on the embedded http.Server.
func NewServer(addr string, svc *tracker.Service) *Server {
	s := &Server{
		svc:     svc,
		limiter: newRateLimiter(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/add", s.handleAdd)
	mux.HandleFunc("/summary", s.handleSummary)
	mux.HandleFunc("/transactions", s.handleTransactions)
	mux.HandleFunc("/transaction", s.handleDeleteTransaction)
	mux.HandleFunc("/reset", s.handleReset)
	mux.HandleFunc("/health", s.handleHealth)

	traceMW := trace.NewMiddleware(clientIP)
	handler := traceMW.Middleware(s.rateLimit(mux))

	s.Server = &http.Server{
		Addr:    addr,
		Handler: handler,
	}
	return s
}

// Shutdown stops the rate limiter's cleanup goroutine along with the
// listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.stop()
	return s.Server.Shutdown(ctx)
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.allow(clientIP(r)) {
			writeJSON(w, http.StatusTooManyRequests, envelope{
				Success: false,
				Message: "Too many requests",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// connection's remote address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
