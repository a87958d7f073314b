package web

import (
	"context"
	stdlog "log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/galanta/cit/internal/logger"
)

const (
	shutdownTimeout = 5 * time.Second
	sweepInterval   = time.Minute
	sessionIdleTTL  = 30 * time.Minute
)

// NewRouter wires the page handler behind the request middleware
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  stdlog.New(logger.Writer(), "", stdlog.LstdFlags),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	h.RegisterRoutes(r)
	return r
}

// Server serves the HTML surface until its context ends
type Server struct {
	addr     string
	handler  http.Handler
	sessions *SessionStore
}

// NewServer creates a server listening on addr
func NewServer(addr string, h *Handler) *Server {
	return &Server{
		addr:     addr,
		handler:  NewRouter(h),
		sessions: h.sessions,
	}
}

// Run listens until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", logger.Scope("web"), "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case err, ok := <-errCh:
			if ok {
				return err
			}
			return nil

		case <-ticker.C:
			if n := s.sessions.Sweep(sessionIdleTTL); n > 0 {
				logger.Debug("idle chats closed", logger.Scope("web"), "count", n)
			}

		case <-ctx.Done():
			logger.Info("server stopping", logger.Scope("web"))
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	}
}
