package controller

import (
	"net/http"
	"path"
	"strings"
)

// Methods lists the HTTP methods a route may be declared with, in the order
// they are advertised in Allow headers.
var Methods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// IsMethod reports whether method is one of Methods.
func IsMethod(method string) bool {
	for _, m := range Methods {
		if m == method {
			return true
		}
	}
	return false
}

// JoinPath joins a manifest prefix and route path into a rooted path without
// a trailing slash.
func JoinPath(prefix, routePath string) string {
	return path.Clean("/" + strings.TrimSpace(prefix) + "/" + strings.TrimSpace(routePath))
}
