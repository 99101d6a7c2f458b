// Package docsite loads, validates and exposes the configuration of a
// documentation site build.
//
// The configuration starts from compiled-in defaults, takes identifiers and
// secrets from the environment, and is validated once before anything reads
// it. Collaborators such as the renderer, the search indexer and the
// manifest packager get it from a Store. Browsers only ever see the Client
// projection, which cannot carry the Algolia admin key.
//
// App is a small Echo server that previews what a browser receives.
package docsite

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// App serves the browser-facing artifacts derived from a loaded site.
type App struct {
	Site SiteConfiguration
	Echo *echo.Echo

	addr     string
	registry *prometheus.Registry
	metrics  bool
}

// AppOption configures additional App behavior.
type AppOption func(*App)

// WithAddr sets the listen address (default ":8000").
func WithAddr(addr string) AppOption {
	return func(a *App) {
		a.addr = addr
	}
}

// WithoutMetrics disables the /metrics endpoint and request instrumentation.
func WithoutMetrics() AppOption {
	return func(a *App) {
		a.metrics = false
	}
}

// NewApp creates an App for a loaded site. Middleware and routes are set up
// immediately, so the App can serve requests through Echo.ServeHTTP
// without Start.
func NewApp(site SiteConfiguration, opts ...AppOption) *App {
	a := &App{
		Site:     site.Clone(),
		Echo:     echo.New(),
		addr:     ":8000",
		registry: prometheus.NewRegistry(),
		metrics:  true,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Echo.HideBanner = true
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// Addr returns the listen address.
func (a *App) Addr() string { return a.addr }

func (a *App) setupRoutes() {
	e := a.Echo
	e.GET("/site-config.json", handleClientConfig)
	e.GET("/head.html", handleHead)
	e.GET("/healthz", handleHealth)
	if a.metrics {
		e.GET("/metrics", a.metricsHandler())
	}
}

// Start serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Echo.Start(a.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}
