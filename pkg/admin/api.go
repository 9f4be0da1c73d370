// Package admin provides a REST API for driving a harness state in a live
// process: arming the countdown, setting jitter, inspecting activity. A
// test driver embeds the API next to its workload and steers it with the
// faultinject CLI or plain HTTP.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/getmockd/faultinject/pkg/faultinject"
	"github.com/getmockd/faultinject/pkg/logging"
	"github.com/getmockd/faultinject/pkg/metrics"
)

// API exposes a harness state over HTTP.
type API struct {
	state           *faultinject.State
	metricsRegistry *metrics.Registry
	httpServer      *http.Server
	port            int
	startTime       time.Time
	log             *slog.Logger

	// Arm bookkeeping: identifies which driver action the current
	// countdown belongs to.
	mu      sync.Mutex
	runID   string
	armedAt time.Time
}

// Option configures an API.
type Option func(*API)

// WithState serves the given state instead of faultinject.Default.
func WithState(s *faultinject.State) Option {
	return func(a *API) {
		if s != nil {
			a.state = s
		}
	}
}

// WithLogger sets the operational logger. nil keeps the no-op default.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// New creates an admin API listening on the given port once started.
func New(port int, opts ...Option) *API {
	a := &API{
		state: faultinject.Default,
		port:  port,
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.metricsRegistry = metrics.ForState(a.state)

	mux := http.NewServeMux()
	a.registerRoutes(mux)
	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return a
}

// registerRoutes sets up all API routes.
func (a *API) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", a.handleHealth)
	mux.HandleFunc("GET /fault", a.handleGetFault)
	mux.HandleFunc("PUT /fault", a.handleSetFault)
	mux.HandleFunc("POST /fault/disable", a.handleDisableFault)
	mux.HandleFunc("POST /fault/reset-stats", a.handleResetStats)
	mux.Handle("GET /metrics", a.metricsRegistry.Handler())
}

// Handler returns the API's HTTP handler, for embedding in an existing
// server or an httptest.Server.
func (a *API) Handler() http.Handler {
	return a.httpServer.Handler
}

// Start begins serving in a background goroutine.
func (a *API) Start() error {
	a.startTime = time.Now()
	a.log.Info("starting fault admin API", "port", a.port)
	go func() {
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("fault admin API error", "error", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the server.
func (a *API) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.httpServer.Shutdown(ctx)
}

// Uptime returns the API uptime in seconds.
func (a *API) Uptime() int {
	return int(time.Since(a.startTime).Seconds())
}
