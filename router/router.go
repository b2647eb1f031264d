package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/drblury/decrouter/app"
	"github.com/drblury/decrouter/controller"
	"github.com/drblury/decrouter/responder"
	"github.com/gorilla/mux"
)

var errMissingDir = errors.New("router: controllers directory is required")

// Router holds the route table built from the controllers directory.
type Router struct {
	mux    *mux.Router
	routes []controller.Route
	before Hook
	after  Hook
	resp   *responder.Responder
}

// New discovers the manifests in the configured directory and builds the
// route table. Any discovery problem is returned; nothing is mounted
// partially.
func New(cfg Config) (*Router, error) {
	if cfg.Registry == nil {
		return nil, errors.New("router: registry is required")
	}

	fsys, dir, err := cfg.filesystem()
	if err != nil {
		return nil, err
	}

	routes, err := controller.Discover(fsys, dir, cfg.Registry)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	resp := cfg.Responder
	if resp == nil {
		resp = responder.NewResponder(responder.WithLogger(logger))
	}

	rt := &Router{
		mux:    mux.NewRouter(),
		routes: routes,
		before: cfg.Before,
		after:  cfg.After,
		resp:   resp,
	}
	if err := rt.mount(); err != nil {
		return nil, err
	}

	logger.Debug("routes mounted", "count", len(routes), "dir", dir)
	return rt, nil
}

func (rt *Router) mount() error {
	explicitHead := make(map[string]bool)
	for _, route := range rt.routes {
		if route.Method == http.MethodHead {
			explicitHead[controller.MatchKey(route.Path)] = true
		}
	}

	for _, route := range rt.routes {
		methods := []string{route.Method}
		if route.Method == http.MethodGet && !explicitHead[controller.MatchKey(route.Path)] {
			methods = append(methods, http.MethodHead)
		}

		muxRoute := rt.mux.Handle(route.Path, rt.actionHandler(route)).Methods(methods...)
		if err := muxRoute.GetError(); err != nil {
			return fmt.Errorf("router: mount %s %s from %s: %w", route.Method, route.Path, route.Source, err)
		}
	}
	return nil
}

func (rt *Router) actionHandler(route controller.Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.Annotate(r, route.Name)
		if err := route.Handler(w, r); err != nil {
			rt.resp.HandleErrors(w, r, err, "action "+route.Name+" failed")
		}
	})
}

type unmatchedKey struct{}

// unmatched is attached to requests that Routes could not dispatch.
type unmatched struct {
	allowed []string
}

// Routes returns the dispatch middleware. Each request runs Before, then
// After, then dispatch; requests without a matching route continue to next
// inside both hooks.
func (rt *Router) Routes() app.Middleware {
	return func(next http.Handler) http.Handler {
		dispatch := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rt.dispatch(w, r, next)
		})
		return hooked(rt.before, hooked(rt.after, dispatch))
	}
}

func (rt *Router) dispatch(w http.ResponseWriter, r *http.Request, next http.Handler) {
	var match mux.RouteMatch
	if rt.mux.Match(r, &match) && match.MatchErr == nil {
		match.Handler.ServeHTTP(w, mux.SetURLVars(r, match.Vars))
		return
	}

	state := &unmatched{allowed: rt.allowedMethods(r)}
	next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), unmatchedKey{}, state)))
}

// allowedMethods probes the route table with every supported method to find
// the ones that would match r's path.
func (rt *Router) allowedMethods(r *http.Request) []string {
	var allowed []string
	for _, method := range controller.Methods {
		probe := new(http.Request)
		*probe = *r
		probe.Method = method

		var match mux.RouteMatch
		if rt.mux.Match(probe, &match) && match.MatchErr == nil {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

func hooked(hook Hook, next http.Handler) http.Handler {
	if hook == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hook(w, r, next)
	})
}

// Param returns the path variable name of the matched route.
func Param(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

// Len reports the number of mounted routes. A nil Router has none.
func (rt *Router) Len() int {
	if rt == nil {
		return 0
	}
	return len(rt.routes)
}

// RouteInfo describes a mounted route.
type RouteInfo struct {
	Name       string `json:"name"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	Controller string `json:"controller"`
	Action     string `json:"action"`
	Source     string `json:"source"`
}

// Table lists mounted routes in discovery order.
func (rt *Router) Table() []RouteInfo {
	if rt == nil {
		return []RouteInfo{}
	}
	table := make([]RouteInfo, 0, len(rt.routes))
	for _, route := range rt.routes {
		table = append(table, RouteInfo{
			Name:       route.Name,
			Method:     route.Method,
			Path:       route.Path,
			Controller: route.Controller,
			Action:     route.Action,
			Source:     route.Source,
		})
	}
	return table
}

func joinAllow(methods []string) string {
	return strings.Join(methods, ", ")
}
