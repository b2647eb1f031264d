package router

import (
	"net/http"

	"github.com/drblury/decrouter/app"
	"github.com/drblury/decrouter/controller"
)

// FallbackFunc answers a request whose path exists but whose method is not
// served. allowed lists the methods that are.
type FallbackFunc func(w http.ResponseWriter, r *http.Request, allowed []string)

// AllowedOption configures AllowedMethods.
type AllowedOption func(*allowedConfig)

type allowedConfig struct {
	methodNotAllowed FallbackFunc
	notImplemented   FallbackFunc
}

// WithMethodNotAllowed replaces the default 405 problem response.
func WithMethodNotAllowed(fn FallbackFunc) AllowedOption {
	return func(c *allowedConfig) {
		if fn != nil {
			c.methodNotAllowed = fn
		}
	}
}

// WithNotImplemented replaces the default 501 problem response.
func WithNotImplemented(fn FallbackFunc) AllowedOption {
	return func(c *allowedConfig) {
		if fn != nil {
			c.notImplemented = fn
		}
	}
}

// AllowedMethods returns the fallback middleware for requests Routes could not
// dispatch:
//
//   - a method outside controller.Methods gets 501;
//   - OPTIONS on a known path gets 200 with an Allow header;
//   - any other method on a known path gets 405 with an Allow header;
//   - unknown paths continue to next.
//
// Requests that Routes dispatched, or that never passed through Routes, go
// straight to next.
func (rt *Router) AllowedMethods(opts ...AllowedOption) app.Middleware {
	cfg := &allowedConfig{
		methodNotAllowed: rt.resp.HandleMethodNotAllowed,
		notImplemented:   rt.resp.HandleNotImplemented,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state, ok := r.Context().Value(unmatchedKey{}).(*unmatched)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			switch {
			case !controller.IsMethod(r.Method):
				cfg.notImplemented(w, r, state.allowed)
			case len(state.allowed) == 0:
				next.ServeHTTP(w, r)
			case r.Method == http.MethodOptions:
				w.Header().Set("Allow", joinAllow(state.allowed))
				w.Header().Set("Content-Length", "0")
				w.WriteHeader(http.StatusOK)
			default:
				cfg.methodNotAllowed(w, r, state.allowed)
			}
		})
	}
}
