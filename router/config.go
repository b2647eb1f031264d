package router

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/drblury/decrouter/controller"
	"github.com/drblury/decrouter/responder"
)

// Hook runs around every request that reaches Routes, matched or not. A hook
// must call next for the request to be dispatched; code after next runs once
// the downstream chain has completed.
type Hook func(w http.ResponseWriter, r *http.Request, next http.Handler)

// Config is the input of New.
type Config struct {
	// ControllersDir is the manifest directory. With ControllersFS set it is
	// resolved inside that filesystem, otherwise on disk.
	ControllersDir string
	ControllersFS  fs.FS
	Registry       *controller.Registry
	// Before wraps After, which wraps dispatch.
	Before Hook
	After  Hook
	// Responder renders action errors and fallback responses.
	Responder *responder.Responder
	Logger    *slog.Logger
}

func (c Config) filesystem() (fs.FS, string, error) {
	if c.ControllersFS != nil {
		dir := c.ControllersDir
		if dir == "" {
			dir = "."
		}
		return c.ControllersFS, dir, nil
	}
	if c.ControllersDir == "" {
		return nil, "", errMissingDir
	}
	return os.DirFS(c.ControllersDir), ".", nil
}
