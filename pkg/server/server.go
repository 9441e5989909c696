// Package server serves the reel designer form and a small JSON/SVG API.
//
// Routes:
//
//	GET  /                  form prefilled with the default record
//	POST /                  validate, then re-render the form with messages or diagrams
//	GET  /api/v1/defaults   default record as JSON
//	POST /api/v1/validate   record in, {"valid","violations"} out
//	GET  /api/v1/side.svg   side view; query parameters overlay the defaults
//	GET  /api/v1/front.svg  front view; query parameters overlay the defaults
//	GET  /healthz           liveness probe
//
// Every response carries an X-Request-Id header.
package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/reeldesigner/pkg/config"
	"github.com/matzehuels/reeldesigner/pkg/pipeline"
	"github.com/matzehuels/reeldesigner/pkg/reel"
)

// maxBodyBytes bounds JSON and form request bodies.
const maxBodyBytes = 64 << 10

// Server holds the handlers and their dependencies.
type Server struct {
	runner   *pipeline.Runner
	opts     pipeline.Options
	defaults reel.Dimensions
	cfg      config.ServerConfig
	logger   *log.Logger
	router   chi.Router
}

// New creates a server rendering through runner with the render, label
// and default settings of cfg.
func New(runner *pipeline.Runner, cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:   runner,
		opts:     cfg.PipelineOptions(),
		defaults: cfg.Defaults,
		cfg:      cfg.Server,
		logger:   logger,
	}
	s.opts.SetDefaults()
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleForm)
	r.Post("/", s.handleFormSubmit)
	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/defaults", s.handleDefaults)
		r.Post("/validate", s.handleValidate)
		r.Get("/side.svg", s.handleSVG(pipeline.ViewSide))
		r.Get("/front.svg", s.handleSVG(pipeline.ViewFront))
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured address until ctx is canceled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s,
		ReadTimeout:  s.cfg.ReadTimeout.Std(),
		WriteTimeout: s.cfg.WriteTimeout.Std(),
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout.Std()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
