package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/drblury/decrouter/responder"
)

// Middleware wraps an http.Handler to produce a new http.Handler.
type Middleware func(http.Handler) http.Handler

// App is an ordered middleware pipeline. It is safe to serve requests from
// many goroutines; Use should happen before the first request.
type App struct {
	settings    *options
	resp        *responder.Responder
	mu          sync.Mutex
	middlewares []Middleware
	handler     http.Handler
}

// New builds an empty App.
func New(opts ...Option) *App {
	settings := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(settings)
		}
	}

	resp := settings.responder
	if resp == nil {
		resp = responder.NewResponder(responder.WithLogger(settings.logger))
		settings.responder = resp
	}

	return &App{settings: settings, resp: resp}
}

// Use appends middleware to the pipeline. Middleware runs in the order it was
// added: the first one added sees the request first and the response last.
func (a *App) Use(middlewares ...Middleware) *App {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, mw := range middlewares {
		if mw != nil {
			a.middlewares = append(a.middlewares, mw)
		}
	}
	a.handler = nil
	return a
}

// Handler returns the composed pipeline. It is built on first use and rebuilt
// after a later Use.
func (a *App) Handler() http.Handler {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.handler != nil {
		return a.handler
	}

	chain := a.settings.defaultMiddlewares()
	chain = append(chain, a.middlewares...)

	terminal := http.HandlerFunc(a.resp.HandleNotFound)
	a.handler = withRouteLabel(applyMiddlewares(terminal, chain))
	return a.handler
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.Handler().ServeHTTP(w, r)
}

// Listen binds addr and serves until ctx is cancelled. A bind failure is
// returned immediately.
func (a *App) Listen(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully within
// Config.ShutdownTimeout. Serve takes ownership of ln.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	logger := a.settings.logger
	srv := &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if logger != nil {
		logger.Info("server listening", "addr", ln.Addr().String())
	}
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	timeout := a.settings.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultConfig().ShutdownTimeout
	}
	shutCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	shutdownErr := srv.Shutdown(shutCtx)
	// Shutdown closes the listener first, so Serve has returned or is about to.
	if err := <-serverErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	if shutdownErr != nil {
		return fmt.Errorf("graceful shutdown failed: %w", shutdownErr)
	}
	if logger != nil {
		logger.Info("server stopped")
	}
	return nil
}

func applyMiddlewares(handler http.Handler, middlewares []Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] == nil {
			continue
		}
		handler = middlewares[i](handler)
	}
	return handler
}
