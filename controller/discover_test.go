package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"testing/fstest"
)

type widgets struct{}

func (widgets) List(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (widgets) Create(w http.ResponseWriter, r *http.Request) error {
	return errors.New("create failed")
}

func (widgets) Helper() string { return "not an action" }

type declared struct{}

func (declared) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (declared) Routes() []Decl {
	return []Decl{{Method: "get", Path: "ping", Action: "Ping"}}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	reg := NewRegistry()
	reg.MustRegister("widgets", widgets{})
	reg.MustRegister("health", declared{})
	return reg
}

const widgetsManifest = `
controller: widgets
prefix: /widgets/
routes:
  - method: get
    path: /
    action: List
  - method: POST
    path: ""
    action: Create
    name: widgets.create
`

func TestDiscoverBindsManifestRoutes(t *testing.T) {
	fsys := fstest.MapFS{
		"controllers/widgets.yaml": {Data: []byte(widgetsManifest)},
		"controllers/health.yml":   {Data: []byte("controller: health\nprefix: /\n")},
		"controllers/README.md":    {Data: []byte("ignored")},
	}

	routes, err := Discover(fsys, "controllers", newTestRegistry(t))
	if err != nil {
		t.Fatalf("discover: %v", err)
	}

	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d: %+v", len(routes), routes)
	}

	// health.yml sorts before widgets.yaml.
	if routes[0].Name != "health.Ping" || routes[0].Method != http.MethodGet || routes[0].Path != "/ping" {
		t.Fatalf("unexpected declared route: %+v", routes[0])
	}
	if routes[1].Name != "widgets.List" || routes[1].Path != "/widgets" {
		t.Fatalf("unexpected list route: %+v", routes[1])
	}
	if routes[2].Name != "widgets.create" || routes[2].Method != http.MethodPost {
		t.Fatalf("unexpected create route: %+v", routes[2])
	}
	if routes[2].Source != "controllers/widgets.yaml" {
		t.Fatalf("unexpected source %q", routes[2].Source)
	}

	rec := httptest.NewRecorder()
	if err := routes[1].Handler(rec, httptest.NewRequest(http.MethodGet, "/widgets", nil)); err != nil {
		t.Fatalf("plain action should not fail: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	if err := routes[2].Handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/widgets", nil)); err == nil {
		t.Fatal("expected error-returning action to surface its error")
	}
}

func TestDiscoverFailures(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
		want  error
	}{
		{
			name:  "no manifests",
			files: fstest.MapFS{"controllers/notes.txt": {Data: []byte("x")}},
			want:  ErrNoManifests,
		},
		{
			name:  "unknown controller",
			files: fstest.MapFS{"controllers/a.yaml": {Data: []byte("controller: ghosts\nroutes:\n  - {method: GET, path: /, action: List}\n")}},
			want:  ErrUnknownController,
		},
		{
			name:  "missing method",
			files: fstest.MapFS{"controllers/a.yaml": {Data: []byte("controller: widgets\nroutes:\n  - {method: GET, path: /, action: Missing}\n")}},
			want:  ErrInvalidAction,
		},
		{
			name:  "wrong signature",
			files: fstest.MapFS{"controllers/a.yaml": {Data: []byte("controller: widgets\nroutes:\n  - {method: GET, path: /, action: Helper}\n")}},
			want:  ErrInvalidAction,
		},
		{
			name:  "unsupported method",
			files: fstest.MapFS{"controllers/a.yaml": {Data: []byte("controller: widgets\nroutes:\n  - {method: TRACE, path: /, action: List}\n")}},
			want:  ErrInvalidManifest,
		},
		{
			name:  "unknown field",
			files: fstest.MapFS{"controllers/a.yaml": {Data: []byte("controller: widgets\nprefx: /typo\n")}},
			want:  ErrInvalidManifest,
		},
		{
			name:  "empty manifest",
			files: fstest.MapFS{"controllers/a.yaml": {Data: []byte("")}},
			want:  ErrInvalidManifest,
		},
		{
			name:  "no routes",
			files: fstest.MapFS{"controllers/a.yaml": {Data: []byte("controller: widgets\n")}},
			want:  ErrInvalidManifest,
		},
		{
			name:  "conflict with renamed variable",
			files: fstest.MapFS{"controllers/a.yaml": {Data: []byte("controller: widgets\nroutes:\n  - {method: GET, path: \"/w/{id}\", action: List}\n  - {method: GET, path: \"/w/{key}\", action: List}\n")}},
			want:  ErrRouteConflict,
		},
		{
			name:  "conflict with explicit default pattern",
			files: fstest.MapFS{"controllers/a.yaml": {Data: []byte("controller: widgets\nroutes:\n  - {method: GET, path: \"/w/{id}\", action: List}\n  - {method: GET, path: \"/w/{key:[^/]+}\", action: List}\n")}},
			want:  ErrRouteConflict,
		},
		{
			name: "conflict across manifests",
			files: fstest.MapFS{
				"controllers/a.yaml": {Data: []byte("controller: widgets\nroutes:\n  - {method: GET, path: /w, action: List}\n")},
				"controllers/b.yaml": {Data: []byte("controller: widgets\nprefix: /w\nroutes:\n  - {method: get, path: /, action: List}\n")},
			},
			want: ErrRouteConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Discover(tt.files, "controllers", newTestRegistry(t))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDiscoverMissingDirectory(t *testing.T) {
	if _, err := Discover(fstest.MapFS{}, "controllers", NewRegistry()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("b", widgets{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("a", declared{}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := reg.Register("a", widgets{}); !errors.Is(err, ErrDuplicateController) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := reg.Register(" ", widgets{}); !errors.Is(err, ErrInvalidController) {
		t.Fatalf("expected ErrInvalidController for blank name, got %v", err)
	}
	if err := reg.Register("nil", nil); !errors.Is(err, ErrInvalidController) {
		t.Fatalf("expected ErrInvalidController for nil controller, got %v", err)
	}

	names := reg.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestJoinPath(t *testing.T) {
	cases := map[[2]string]string{
		{"", ""}:              "/",
		{"/", "/"}:            "/",
		{"users", ""}:         "/users",
		{"/users/", "/{id}"}:  "/users/{id}",
		{"api//v1", "items/"}: "/api/v1/items",
		{"", "/{id:[0-9]+}"}:  "/{id:[0-9]+}",
	}
	for in, want := range cases {
		if got := JoinPath(in[0], in[1]); got != want {
			t.Errorf("JoinPath(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}

func TestDiscoverAllowsDistinctPatterns(t *testing.T) {
	fsys := fstest.MapFS{
		"controllers/a.yaml": {Data: []byte("controller: widgets\nroutes:\n  - {method: GET, path: \"/w/{id:[0-9]+}\", action: List}\n  - {method: GET, path: \"/w/{slug:[a-z]+}\", action: List}\n  - {method: POST, path: \"/w/{id}\", action: Create}\n")},
	}

	routes, err := Discover(fsys, "controllers", newTestRegistry(t))
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(routes))
	}
}

func TestPathTemplates(t *testing.T) {
	tests := []struct {
		path string
		key  string
		bare string
		vars []PathVar
	}{
		{"/users", "/users", "/users", []PathVar{}},
		{"/users/{id}", "/users/{[^/]+}", "/users/{id}", []PathVar{{Name: "id"}}},
		{"/users/{ key : [0-9]+ }", "/users/{[0-9]+}", "/users/{key}", []PathVar{{Name: "key", Pattern: "[0-9]+"}}},
		{"/x/{id:[0-9]{2}}/{rest}", "/x/{[0-9]{2}}/{[^/]+}", "/x/{id}/{rest}", []PathVar{{Name: "id", Pattern: "[0-9]{2}"}, {Name: "rest"}}},
		{"/broken/{id", "/broken/{id", "/broken/{id", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := MatchKey(tt.path); got != tt.key {
				t.Errorf("MatchKey = %q, want %q", got, tt.key)
			}
			if got := BarePath(tt.path); got != tt.bare {
				t.Errorf("BarePath = %q, want %q", got, tt.bare)
			}
			if got := PathVars(tt.path); !reflect.DeepEqual(got, tt.vars) {
				t.Errorf("PathVars = %#v, want %#v", got, tt.vars)
			}
		})
	}
}
