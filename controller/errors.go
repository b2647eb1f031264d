package controller

import "errors"

var (
	ErrUnknownController   = errors.New("unknown controller")
	ErrDuplicateController = errors.New("controller already registered")
	ErrInvalidController   = errors.New("invalid controller")
	ErrInvalidManifest     = errors.New("invalid manifest")
	ErrInvalidAction       = errors.New("invalid action")
	ErrRouteConflict       = errors.New("route conflict")
	ErrNoManifests         = errors.New("no manifests found")
)
