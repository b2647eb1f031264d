package example

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/drblury/decrouter/app"
	"github.com/drblury/decrouter/controller"
	"github.com/drblury/decrouter/info"
	"github.com/drblury/decrouter/probe"
	"github.com/drblury/decrouter/responder"
	"github.com/drblury/decrouter/router"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

//go:embed controllers
var controllersFS embed.FS

const controllersDir = "controllers"

// Version is reported by /system/version and the OpenAPI document.
var Version = "dev"

// App is the assembled example service.
type App struct {
	*app.App
	Router *router.Router

	closers []func(context.Context) error
}

// Option adjusts NewApp.
type Option func(*settings)

type settings struct {
	controllers fs.FS
	before      router.Hook
	after       router.Hook
}

// WithHooks replaces the Before and After hooks handed to the router.
func WithHooks(before, after router.Hook) Option {
	return func(s *settings) {
		if before != nil {
			s.before = before
		}
		if after != nil {
			s.after = after
		}
	}
}

// WithControllersFS reads manifests from fsys instead of the embedded
// controllers directory. The directory name stays "controllers".
func WithControllersFS(fsys fs.FS) Option {
	return func(s *settings) {
		if fsys != nil {
			s.controllers = fsys
		}
	}
}

// NewApp wires the users, system and metrics controllers into a router and
// mounts it on a new App: Routes first, then AllowedMethods.
func NewApp(cfg Config, logger *slog.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := settings{
		controllers: controllersFS,
		before:      stampRequestID,
		after:       passThrough,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	a := &App{}
	resp := responder.NewResponder(responder.WithLogger(logger))

	metricsReg := prometheus.NewRegistry()
	metricsReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	readiness := []probe.Func{
		func(ctx context.Context) error {
			return probe.NewRoutesProbe(a.Router)(ctx)
		},
	}
	if cfg.MongoURI != "" {
		client, err := mongo.Connect(context.Background(), mongoopts.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		a.closers = append(a.closers, client.Disconnect)
		readiness = append(readiness, probe.NewMongoPingProbe(client, nil))
	}

	system := info.NewInfoHandler(
		info.WithInfoResponder(resp),
		info.WithBaseURL("/system"),
		info.WithInfoProvider(versionInfo),
		info.WithRoutesProvider(func() any {
			return a.Router.Table()
		}),
		info.WithSwaggerProvider(func() ([]byte, error) {
			return a.Router.OpenAPI("decrouter example", Version).MarshalJSON()
		}),
		info.WithReadinessChecks(readiness...),
	)

	reg := controller.NewRegistry()
	reg.MustRegister("users", NewUsers(resp))
	reg.MustRegister("system", system)
	reg.MustRegister("metrics", NewMetrics(metricsReg))

	rt, err := router.New(router.Config{
		ControllersDir: controllersDir,
		ControllersFS:  s.controllers,
		Registry:       reg,
		Before:         s.before,
		After:          s.after,
		Responder:      resp,
		Logger:         logger,
	})
	if err != nil {
		_ = a.Close(context.Background())
		return nil, fmt.Errorf("build router: %w", err)
	}
	a.Router = rt

	a.App = app.New(
		app.WithLogger(logger),
		app.WithResponder(resp),
		app.WithMetrics(metricsReg, "decrouter"),
		app.WithConfigMutator(func(c *app.Config) {
			c.Timeout = cfg.RequestTimeout
			c.ShutdownTimeout = cfg.ShutdownTimeout
			c.QuietdownRoutes = []string{"/system/healthz", "/system/readyz", "/metrics"}
			c.HideHeaders = []string{"Authorization", "Cookie"}
		}),
	)
	a.Use(rt.Routes())
	a.Use(rt.AllowedMethods())

	logger.Debug("controllers mounted", "routes", rt.Len())
	return a, nil
}

// Close releases the connections opened by NewApp.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range a.closers {
		if err := closeFn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Run builds the App, announces the port on stdout and serves until ctx is
// cancelled.
func Run(ctx context.Context, cfg Config, stdout io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	a, err := NewApp(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Close(closeCtx); err != nil {
			logger.Warn("close failed", "error", err)
		}
	}()

	fmt.Fprintf(stdout, "Listen at %d\n", cfg.Port())
	return a.Listen(ctx, cfg.Addr())
}

func stampRequestID(w http.ResponseWriter, r *http.Request, next http.Handler) {
	id := r.Header.Get("X-Request-Id")
	if id == "" {
		id = ulid.Make().String()
	}
	w.Header().Set("X-Request-Id", id)
	next.ServeHTTP(w, r)
}

func passThrough(w http.ResponseWriter, r *http.Request, next http.Handler) {
	next.ServeHTTP(w, r)
}

func versionInfo() any {
	return map[string]string{
		"name":    "decrouter-example",
		"version": Version,
		"go":      runtime.Version(),
	}
}
