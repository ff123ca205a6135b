// Package generator coordinates the walk → render pipeline that turns a
// compiled zoneinfo tree into the installer's timezone selection templates.
package generator

import (
	"context"
	"errors"
	"log/slog"

	"github.com/goliatone/go-tzdebconf/pkg/debconf"
	"github.com/goliatone/go-tzdebconf/pkg/zoneinfo"
)

const defaultRendererName = "debconf"

// Option customises the generator configuration.
type Option func(*Generator)

// WithAreas overrides the fixed default area list. Order is preserved in the
// output.
func WithAreas(areas []string) Option {
	return func(g *Generator) {
		if len(areas) == 0 {
			return
		}
		g.areas = append([]string{}, areas...)
	}
}

// WithPolicy injects a symlink classification policy. Nil keeps the curated
// default.
func WithPolicy(policy *zoneinfo.Policy) Option {
	return func(g *Generator) {
		g.policy = policy
	}
}

// WithRegistry injects a renderer registry, replacing the built-in debconf
// and list renderers.
func WithRegistry(registry Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// WithLogger injects a structured logger. Nil falls back to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// Generator runs the pipeline with sensible defaults (fixed area list,
// curated policy, debconf renderer) while remaining open to injection.
type Generator struct {
	areas           []string
	policy          *zoneinfo.Policy
	registry        Registry
	defaultRenderer string
	logger          *slog.Logger
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.areas == nil {
		g.areas = zoneinfo.Areas()
	}
	if g.registry == nil {
		g.registry = builtinRegistry()
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Request describes one generation run.
type Request struct {
	// Root is the directory holding the compiled zoneinfo entries.
	Root string

	// Renderer names the output format. If empty, the generator falls back
	// to the configured default renderer.
	Renderer string
}

// Generate executes the walker → renderer sequence and returns the rendered
// bytes. Nothing is produced when the walk fails, so callers never see
// partial output.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, err := g.walk(req.Root)
	if err != nil {
		return nil, err
	}

	name := req.Renderer
	if name == "" {
		name = g.defaultRenderer
	}
	renderer, err := g.registry.Get(name)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("rendering zone table", "renderer", name)
	return renderer.Render(ctx, table)
}

// Document walks the tree and returns the debconf templates document before
// encoding, for callers that want the paragraphs rather than the bytes.
func (g *Generator) Document(ctx context.Context, root string) (debconf.Document, error) {
	if ctx == nil {
		return debconf.Document{}, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return debconf.Document{}, err
	}

	table, err := g.walk(root)
	if err != nil {
		return debconf.Document{}, err
	}
	return BuildDocument(table), nil
}

// Audit walks the tree and returns every unclassified symlink path instead
// of stopping at the first one.
func (g *Generator) Audit(ctx context.Context, root string) ([]string, error) {
	if ctx == nil {
		return nil, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	walker, err := zoneinfo.NewWalker(root, g.policy)
	if err != nil {
		return nil, err
	}
	unknown, err := walker.Audit(g.areas)
	if err != nil {
		return nil, err
	}
	if len(unknown) > 0 {
		g.logger.Warn("unclassified symlinks found", "count", len(unknown))
	}
	return unknown, nil
}

// walk validates the root and collects the zone table for the configured
// areas and policy.
func (g *Generator) walk(root string) (*zoneinfo.Table, error) {
	walker, err := zoneinfo.NewWalker(root, g.policy)
	if err != nil {
		return nil, err
	}
	table, err := walker.WalkAll(g.areas)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, area := range table.Areas {
		total += len(table.Zones[area])
	}
	g.logger.Debug("collected zone table", "areas", len(table.Areas), "zones", total)
	return table, nil
}
