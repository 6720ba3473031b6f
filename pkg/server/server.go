package server

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/displaycard/internal/errors"
	"github.com/vango-dev/displaycard/pkg/middleware"
	"github.com/vango-dev/displaycard/pkg/render"
	"github.com/vango-dev/displaycard/pkg/vdom"
)

// Routes served by the runtime.
const (
	LivePath    = "/_live"
	ClientPath  = render.DefaultClientScript
	HealthPath  = "/healthz"
	MetricsPath = "/metrics"
)

// Page is what a PageFunc produces for one request.
type Page struct {
	// Data holds the document head. Body and the live bootstrap fields are
	// filled in by the server.
	Data render.PageData

	// Root renders the page body. It is mounted in the request's session
	// and called again on every re-render.
	Root func() *vdom.VNode
}

// PageFunc builds the page for a request.
type PageFunc func(ctx context.Context) (Page, error)

// Config configures a Server.
type Config struct {
	// Address is the listen address (e.g., "localhost:3000").
	Address string

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// Sessions configures the session manager.
	Sessions ManagerConfig

	// Registry receives the runtime metrics and is served on /metrics.
	// Defaults to a fresh registry with Go and process collectors.
	Registry *prometheus.Registry

	// CheckOrigin validates WebSocket origins. Defaults to same-origin.
	CheckOrigin func(r *http.Request) bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Server is the live page server.
type Server struct {
	config      Config
	page        PageFunc
	sessions    *SessionManager
	metrics     *Metrics
	httpMetrics *middleware.HTTPMetrics
	registry    *prometheus.Registry
	renderer    *render.Renderer
	upgrader    websocket.Upgrader
	router      chi.Router
	logger      *slog.Logger

	httpServer *http.Server
}

// New creates a Server that renders page at "/".
func New(config Config, page PageFunc) *Server {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "server")

	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = 10 * time.Second
	}

	registry := config.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	metrics := NewMetrics(registry)

	s := &Server{
		config:   config,
		page:     page,
		sessions: NewSessionManager(config.Sessions, metrics, logger),
		metrics:  metrics,
		httpMetrics: middleware.NewHTTPMetrics(
			middleware.WithNamespace(MetricsNamespace),
			middleware.WithRegistry(registry),
		),
		registry: registry,
		renderer: render.NewRenderer(render.RendererConfig{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     config.CheckOrigin,
		},
		logger: logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.OpenTelemetry(
		middleware.WithTracerName(TracerName),
		middleware.WithRequestFilter(traced),
	))
	r.Use(s.httpMetrics.Handler)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handlePage)
	r.Get(LivePath, s.handleLive)
	r.Get(ClientPath, s.serveClient)
	r.Head(ClientPath, s.serveClient)
	r.Get(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle(MetricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// Handler returns the HTTP handler, for embedding in another router or
// for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Sessions returns the session manager.
func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

// Metrics returns the runtime collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "displaycard.page",
		attribute.String("http.path", r.URL.Path),
	)
	html, err := s.renderPage(ctx)
	endSpan(span, err)

	if err != nil {
		status := http.StatusInternalServerError
		if errors.HasCode(err, errors.CodeSessionLimit) {
			status = http.StatusServiceUnavailable
		}
		s.logger.Error("page render failed", "error", err, "request_id", chimw.GetReqID(r.Context()))
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(html)
	s.metrics.PagesRendered.Inc()
}

func (s *Server) renderPage(ctx context.Context) ([]byte, error) {
	page, err := s.page(ctx)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Create(page.Root)
	if err != nil {
		return nil, err
	}

	data := page.Data
	data.Body = sess.Tree()
	data.SessionID = sess.ID
	data.LivePath = LivePath
	data.ClientScript = ClientPath

	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, data); err != nil {
		s.sessions.Remove(sess.ID)
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	if _, err := s.sessions.Get(id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	sess, err := s.sessions.Attach(id, conn)
	if err != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()),
			time.Now().Add(time.Second))
		_ = conn.Close()
		return
	}

	// The request context ends when the handler returns, so the session
	// runs until the socket or the server closes it.
	sess.Serve(context.WithoutCancel(r.Context()))
}

// Run listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown closes all sessions and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.sessions.Close()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// traced reports whether a request gets a span. Probes and scrapes do not.
func traced(r *http.Request) bool {
	return r.URL.Path != HealthPath && r.URL.Path != MetricsPath
}
