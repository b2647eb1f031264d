package controller

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Route is a bound route ready to be mounted.
type Route struct {
	Name       string
	Method     string
	Path       string
	Controller string
	Action     string
	// Source is the manifest the route was declared in.
	Source  string
	Handler ActionFunc
}

// Discover reads every *.yaml and *.yml manifest directly inside dir, in
// lexical order, and binds their routes against reg. Two routes with the same
// method whose paths match the same requests are a conflict, wherever they are
// declared; variable names do not count.
func Discover(fsys fs.FS, dir string, reg *Registry) ([]Route, error) {
	if fsys == nil {
		return nil, fmt.Errorf("controllers filesystem is nil")
	}
	if reg == nil {
		return nil, fmt.Errorf("controller registry is nil")
	}
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read controllers dir %q: %w", dir, err)
	}

	var (
		routes    []Route
		manifests int
		seen      = make(map[string]string)
	)
	for _, entry := range entries {
		if entry.IsDir() || !isManifestFile(entry.Name()) {
			continue
		}

		source := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, source)
		if err != nil {
			return nil, fmt.Errorf("read manifest %s: %w", source, err)
		}

		m, err := ParseManifest(data, source)
		if err != nil {
			return nil, err
		}
		manifests++

		bound, err := Bind(m, reg)
		if err != nil {
			return nil, err
		}

		for _, route := range bound {
			key := route.Method + " " + MatchKey(route.Path)
			if previous, dup := seen[key]; dup {
				return nil, fmt.Errorf("%w: %s %s declared in %s and %s", ErrRouteConflict, route.Method, route.Path, previous, route.Source)
			}
			seen[key] = route.Source
			routes = append(routes, route)
		}
	}

	if manifests == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoManifests, dir)
	}
	return routes, nil
}

// Bind resolves the routes of a single manifest.
func Bind(m Manifest, reg *Registry) ([]Route, error) {
	ctrl, ok := reg.Lookup(m.Controller)
	if !ok {
		return nil, fmt.Errorf("%w: %q referenced by %s", ErrUnknownController, m.Controller, m.source)
	}

	decls := m.Routes
	if len(decls) == 0 {
		if declarer, ok := ctrl.(Declarer); ok {
			decls = declarer.Routes()
		}
	}
	if len(decls) == 0 {
		return nil, fmt.Errorf("%w: %s declares no routes for %q", ErrInvalidManifest, m.source, m.Controller)
	}

	routes := make([]Route, 0, len(decls))
	for _, decl := range decls {
		method := strings.ToUpper(strings.TrimSpace(decl.Method))
		if !IsMethod(method) {
			return nil, fmt.Errorf("%w: %s: unsupported method %q", ErrInvalidManifest, m.source, decl.Method)
		}

		action := strings.TrimSpace(decl.Action)
		handler, err := bindAction(ctrl, m.Controller, action)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.source, err)
		}

		name := strings.TrimSpace(decl.Name)
		if name == "" {
			name = m.Controller + "." + action
		}

		routes = append(routes, Route{
			Name:       name,
			Method:     method,
			Path:       JoinPath(m.Prefix, decl.Path),
			Controller: m.Controller,
			Action:     action,
			Source:     m.source,
			Handler:    handler,
		})
	}
	return routes, nil
}

func isManifestFile(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
