package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/hoist/pkg/middleware"
	"github.com/vango-dev/hoist/pkg/render"
	"github.com/vango-dev/hoist/pkg/vdom"
)

// PageFunc builds the element tree of a page.
type PageFunc func(ctx *Ctx) (*vdom.VNode, error)

// Middleware is a function that wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Server is the HTTP server for hoist pages.
type Server struct {
	config   *ServerConfig
	router   chi.Router
	renderer *render.Renderer
	metrics  *middleware.Metrics
	registry *prometheus.Registry

	// middleware wraps pages and handlers registered after Use.
	middleware []func(http.Handler) http.Handler

	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a new Server with the given configuration.
func New(config *ServerConfig) *Server {
	config = config.withDefaults()

	s := &Server{
		config:   config,
		router:   chi.NewRouter(),
		renderer: render.NewRenderer(config.Render),
		logger:   slog.Default().With("component", "server"),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(s.logRequests)
	s.router.Use(chimw.Recoverer)
	if config.Tracing {
		s.router.Use(middleware.OpenTelemetry())
	}
	if config.Metrics {
		s.registry = config.MetricsRegistry
		if s.registry == nil {
			s.registry = prometheus.NewRegistry()
			s.registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
		}
		s.metrics = middleware.NewMetrics(middleware.WithRegistry(s.registry))
		s.router.Use(s.metrics.Middleware)
		s.router.Method(http.MethodGet, config.MetricsPath,
			promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	s.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if config.StaticDir != "" {
		prefix := "/" + strings.Trim(config.StaticPrefix, "/") + "/"
		fs := http.StripPrefix(prefix, http.FileServer(http.Dir(config.StaticDir)))
		s.router.Handle(prefix+"*", fs)
	}

	return s
}

// Use appends middleware for pages and handlers registered afterwards.
func (s *Server) Use(mw Middleware) {
	s.middleware = append(s.middleware, mw)
}

// Page registers a page at pattern. The route answers GET and HEAD for all
// three render modes.
func (s *Server) Page(pattern string, page PageFunc) {
	h := s.PageHandler(page)
	r := s.router.With(s.middleware...)
	r.Get(pattern, h.ServeHTTP)
	r.Head(pattern, h.ServeHTTP)
}

// Handle mounts a plain handler at pattern.
func (s *Server) Handle(pattern string, h http.Handler) {
	s.router.With(s.middleware...).Handle(pattern, h)
}

// PageHandler adapts a page to http.Handler without registering it.
func (s *Server) PageHandler(page PageFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := newCtx(s, w, r)

		body, err := page(ctx)
		if err != nil {
			s.fail(ctx, err)
			return
		}

		doc := ctx.Document()
		resp, err := doc.Render(body, ctx.Mode())
		if err != nil {
			s.fail(ctx, err)
			return
		}

		if s.metrics != nil && ctx.Mode() == render.ModeDocument {
			s.metrics.RecordDocument(len(doc.Styles()), len(doc.Scripts()))
		}
		if err := resp.Write(w); err != nil {
			ctx.Logger().Debug("write response", "error", err)
		}
	})
}

// fail answers a failed page. Pages signal missing resources with
// ErrNotFound; anything else is a server error.
func (s *Server) fail(ctx *Ctx, err error) {
	if errors.Is(err, ErrNotFound) {
		http.NotFound(ctx.w, ctx.r)
		return
	}

	ctx.Logger().Error("render failed", "error", err)
	if s.metrics != nil {
		s.metrics.RecordError(ctx.Mode(), err)
	}
	if s.config.Tracing {
		middleware.RecordError(ctx.r, err)
	}
	http.Error(ctx.w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s
}

// Run starts the server and blocks until ctx is done or the process
// receives SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is like Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.httpServer = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Config returns the server configuration.
func (s *Server) Config() *ServerConfig {
	return s.config
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// SetLogger sets the server logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}
