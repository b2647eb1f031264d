package controller

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decl declares one route of a controller.
type Decl struct {
	Method string `yaml:"method"`
	Path   string `yaml:"path"`
	Action string `yaml:"action"`
	// Name defaults to "<controller>.<Action>".
	Name string `yaml:"name,omitempty"`
}

// Declarer is implemented by controllers that declare their routes in code.
type Declarer interface {
	Routes() []Decl
}

// Manifest is the parsed form of one file in the controllers directory.
type Manifest struct {
	Controller string `yaml:"controller"`
	Prefix     string `yaml:"prefix"`
	Routes     []Decl `yaml:"routes"`

	source string
}

// Source is the file the manifest was read from.
func (m Manifest) Source() string {
	return m.source
}

// ParseManifest decodes a manifest. Unknown keys are rejected so that typos do
// not silently drop routes.
func ParseManifest(data []byte, source string) (Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Manifest{}, fmt.Errorf("%w: %s is empty", ErrInvalidManifest, source)
		}
		return Manifest{}, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, source, err)
	}

	m.Controller = strings.TrimSpace(m.Controller)
	if m.Controller == "" {
		return Manifest{}, fmt.Errorf("%w: %s: controller is required", ErrInvalidManifest, source)
	}
	m.source = source
	return m, nil
}
