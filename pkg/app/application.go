package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dreamshoots/internal/metrics"
	"dreamshoots/pkg/config"
	"dreamshoots/pkg/contracts"
	"dreamshoots/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

const IntakePath = "/api/v1/bookings"

type shutdownHook struct {
	name string
	fn   func() error
}

type Application struct {
	cfg              *config.Config
	server           *http.Server
	idempotencyStore *middleware.InMemoryIdempotencyStore
	rateLimiter      *middleware.RateLimiter
	healthHandler    http.Handler
	appHttpHandler   http.Handler
	handler          http.Handler
	hooks            []shutdownHook
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// AdminGate builds the admin token check shared by every privileged route.
func AdminGate(cfg *config.Config) func(httprouter.Handle) httprouter.Handle {
	return middleware.AdminToken(cfg.AdminToken, cfg.AdminTokenHeader, cfg.Log, metrics.IncAdminAuthFailure)
}

func (a *Application) SetApp(healthHandler contracts.Handler, appHandlers ...contracts.Handler) {
	metrics.Register()
	a.setHealthHandler(healthHandler)
	a.setAppHandler(appHandlers)
	a.setAppServer()
}

// OnShutdown registers fn to run after the HTTP server stops, in
// registration order.
func (a *Application) OnShutdown(name string, fn func() error) {
	a.hooks = append(a.hooks, shutdownHook{name: name, fn: fn})
}

// Handler returns the fully wrapped root handler.
func (a *Application) Handler() http.Handler {
	return a.handler
}

func (a *Application) setHealthHandler(healthHandler contracts.Handler) {
	healthRouter := httprouter.New()
	healthHandler.RegisterRoutes(healthRouter)

	var healthHTTPHandler http.Handler = healthRouter
	healthHTTPHandler = middleware.RequestLogging(a.cfg.Log)(healthHTTPHandler)
	healthHTTPHandler = middleware.Recovery(a.cfg.Log)(healthHTTPHandler)
	a.healthHandler = healthHTTPHandler
	a.cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")
}

func (a *Application) setAppHandler(appHandlers []contracts.Handler) {
	cfg := a.cfg
	appRouter := httprouter.New()
	for _, h := range appHandlers {
		h.RegisterRoutes(appRouter)
	}

	intake := middleware.MatchRoute(http.MethodPost, IntakePath)
	a.idempotencyStore = middleware.NewInMemoryIdempotencyStore(cfg.IdempotencyTTL)
	a.rateLimiter = middleware.NewRateLimiter(
		cfg.RateLimitRequests,
		cfg.RateLimitWindow,
		middleware.ClientIPExtractor(cfg.TrustedProxyNets),
		cfg.Log,
	)

	var appHttpHandler http.Handler = appRouter
	appHttpHandler = middleware.Idempotency(a.idempotencyStore, middleware.DefaultIdempotencyHeader, intake)(appHttpHandler)
	appHttpHandler = middleware.RequestTimeout(cfg.RequestTimeout)(appHttpHandler)
	appHttpHandler = middleware.RateLimit(a.rateLimiter, intake)(appHttpHandler)
	appHttpHandler = middleware.ContentTypeValidation(cfg.Log)(appHttpHandler)
	appHttpHandler = middleware.MaxRequestSize(int64(cfg.MaxRequestSize))(appHttpHandler)
	appHttpHandler = middleware.CORS(cfg.CORSOrigins, cfg.CORSAllowCredentials, cfg.AdminTokenHeader)(appHttpHandler)
	appHttpHandler = middleware.HTTPMetrics(metrics.ObserveHTTPRequest)(appHttpHandler)
	appHttpHandler = middleware.RequestLogging(cfg.Log)(appHttpHandler)
	appHttpHandler = middleware.Recovery(cfg.Log)(appHttpHandler)
	a.appHttpHandler = appHttpHandler
	cfg.Log.Info("Application endpoints configured with full security middleware stack")
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/", a.appHttpHandler)
	a.handler = mux

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

// Stop releases background workers and runs shutdown hooks without touching
// the listener.
func (a *Application) Stop() {
	a.cfg.Log.Info("Stopping background workers...")
	a.idempotencyStore.Stop()
	a.rateLimiter.Stop()
	a.cfg.Log.Info("Background workers stopped")

	for _, h := range a.hooks {
		if err := h.fn(); err != nil {
			a.cfg.Log.Error("Shutdown hook failed", "hook", h.name, "error", err)
		}
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	a.Stop()
	a.cfg.Log.Info("Server stopped gracefully")
}
