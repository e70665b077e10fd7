// Package server is the HTTP preview for worksheets.
//
// Routes:
//
//	GET /healthz          liveness probe
//	GET /topics           registered topics as JSON
//	GET /sheets/{topic}   a rendered sheet; query: seed, format, answers and
//	                      any topic parameter (count, mode, max, ...)
//
// A request without a valid seed is redirected to the same sheet under a
// fresh seed, so every page that is actually served has a shareable,
// reproducible URL.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nobu-k/100-math-sub004/internal/config"
	"github.com/nobu-k/100-math-sub004/internal/logging"
	"github.com/nobu-k/100-math-sub004/render"
	"github.com/nobu-k/100-math-sub004/worksheet"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-Id"

// Query keys that select presentation rather than content.
const (
	KeyFormat  = "format"
	KeyAnswers = "answers"
)

const shutdownGrace = 5 * time.Second

// Server serves rendered worksheets.
type Server struct {
	router   *chi.Mux
	registry *worksheet.Registry
	log      *slog.Logger

	format  string
	answers bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. It panics on nil.
func WithLogger(log *slog.Logger) Option {
	if log == nil {
		panic("server: WithLogger(nil)")
	}
	return func(s *Server) { s.log = log }
}

// WithDefaults sets the format and answer-key default used when a request
// does not choose one.
func WithDefaults(r config.Render) Option {
	return func(s *Server) {
		if _, err := render.ByName(r.Format); err == nil {
			s.format = r.Format
		}
		s.answers = r.Answers
	}
}

// New builds a Server over reg.
func New(reg *worksheet.Registry, opts ...Option) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		registry: reg,
		log:      logging.Nop(),
		format:   render.FormatHTML,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(requestID)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/topics", s.handleTopics)
	s.router.Get("/sheets/{topic}", s.handleSheet)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.Server) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

type requestIDKey struct{}

// requestID reuses a client-supplied X-Request-Id or assigns a new UUID, and
// echoes it on the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// RequestID returns the id assigned to the request carried by ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestLogger logs one line per request with its status.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", RequestID(r.Context()),
		)
	})
}
