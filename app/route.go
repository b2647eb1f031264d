package app

import (
	"context"
	"net/http"
	"sync/atomic"
)

type routeLabelKey struct{}

type routeLabel struct {
	name atomic.Pointer[string]
}

func withRouteLabel(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(routeLabelKey{}).(*routeLabel); ok {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), routeLabelKey{}, &routeLabel{})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Annotate records the name of the route serving r so that the logging and
// metrics middleware can report it. It is a no-op outside an App.
func Annotate(r *http.Request, name string) {
	if label, ok := r.Context().Value(routeLabelKey{}).(*routeLabel); ok {
		label.name.Store(&name)
	}
}

// RouteName returns the name recorded by Annotate, or "" when no route matched.
func RouteName(r *http.Request) string {
	label, ok := r.Context().Value(routeLabelKey{}).(*routeLabel)
	if !ok {
		return ""
	}
	if name := label.name.Load(); name != nil {
		return *name
	}
	return ""
}
