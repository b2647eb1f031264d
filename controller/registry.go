package controller

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps controller names used in manifests to controller values.
// Register pointer values when actions have pointer receivers.
type Registry struct {
	mu          sync.RWMutex
	controllers map[string]any
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{controllers: make(map[string]any)}
}

// Register adds ctrl under name.
func (r *Registry) Register(name string, ctrl any) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidController)
	}
	if ctrl == nil {
		return fmt.Errorf("%w: %q is nil", ErrInvalidController, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.controllers[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateController, name)
	}
	r.controllers[name] = ctrl
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(name string, ctrl any) {
	if err := r.Register(name, ctrl); err != nil {
		panic(err)
	}
}

// Lookup returns the controller registered under name.
func (r *Registry) Lookup(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctrl, ok := r.controllers[name]
	return ctrl, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.controllers))
	for name := range r.controllers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
