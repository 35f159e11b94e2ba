// Package rest implements the update-check HTTP API.
package rest

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/orbit-editor/update-server/internal/providers"
	"github.com/orbit-editor/update-server/internal/rest/response"
)

// Server holds the internal state of the REST API server.
type Server struct {
	provider providers.Provider
}

// NewServer returns a REST API server object.
func NewServer(_ context.Context, provider providers.Provider) (*Server, error) {
	server := Server{
		provider: provider,
	}

	return &server, nil
}

// Handler returns the request handler with all routes configured.
func (s *Server) Handler() http.Handler {
	// Setup routing.
	router := http.NewServeMux()

	router.HandleFunc("/", s.apiRoot)
	router.HandleFunc("/api", s.apiInfo)
	router.HandleFunc("/api/update", s.apiUpdate)

	return s.recoverer(router)
}

// Serve starts the REST API server on the provided listener and keeps it
// running until the context is canceled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler: s.Handler(),

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0,
	}

	// Drain in-flight requests on shutdown.
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = server.Shutdown(shutdownCtx)
	}()

	err := server.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// recoverer turns a panic during request handling into the generic 500
// response, keeping the detail in the log only.
func (*Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}

			slog.Error("Panic while handling request", "method", r.Method, "url", r.URL.String(), "panic", v)

			_ = response.InternalError().Render(w)
		}()

		next.ServeHTTP(w, r)
	})
}
