package generator

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-tzdebconf/pkg/zoneinfo"
)

// Renderer converts a collected zone table into a byte representation
// (debconf templates, plain listing, etc.).
type Renderer interface {
	Name() string
	Render(ctx context.Context, table *zoneinfo.Table) ([]byte, error)
}

// Registry maps format names to renderers. It is filled once while the
// generator is constructed and only read afterwards, so a plain map suffices.
type Registry map[string]Renderer

// NewRegistry builds a registry from the given renderers, rejecting unnamed
// and duplicate entries.
func NewRegistry(renderers ...Renderer) (Registry, error) {
	reg := make(Registry, len(renderers))
	for _, renderer := range renderers {
		if err := reg.Add(renderer); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Add registers one renderer under its Name.
func (r Registry) Add(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("generator: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("generator: renderer name is required")
	}
	if _, dup := r[name]; dup {
		return fmt.Errorf("generator: format %q registered twice", name)
	}
	r[name] = renderer
	return nil
}

// Get resolves a format name, naming the known formats on a miss.
func (r Registry) Get(name string) (Renderer, error) {
	renderer, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("generator: unknown format %q (have: %s)", name, strings.Join(r.Formats(), ", "))
	}
	return renderer, nil
}

// Formats returns the registered format names, sorted.
func (r Registry) Formats() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// builtinRegistry wires the two shipped formats. Their names are distinct
// constants, so construction cannot fail.
func builtinRegistry() Registry {
	reg := Registry{}
	for _, renderer := range []Renderer{DebconfRenderer{}, ListRenderer{}} {
		reg[renderer.Name()] = renderer
	}
	return reg
}
