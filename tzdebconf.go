// Package tzdebconf generates the Debian installer's timezone selection
// templates from a compiled zoneinfo tree. The heavy lifting lives in
// pkg/zoneinfo (tree walk and alias policy) and pkg/generator (rendering);
// this package re-exports the common entry points.
package tzdebconf

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-tzdebconf/pkg/debconf"
	"github.com/goliatone/go-tzdebconf/pkg/generator"
	"github.com/goliatone/go-tzdebconf/pkg/zoneinfo"
)

// Request describes one generation run; alias exported via the root package
// for convenience.
type Request = generator.Request

// Table holds the collected, policy-filtered zone identifiers per area.
type Table = zoneinfo.Table

// Policy decides which symlinked zoneinfo entries are user-selectable.
type Policy = zoneinfo.Policy

// Document is the templates document model before encoding.
type Document = debconf.Document

// Areas returns the fixed area list in presentation order.
func Areas() []string {
	return zoneinfo.Areas()
}

// Generate walks the zoneinfo tree rooted at root and renders the debconf
// templates document. It is the simplest entry point for callers that just
// want the templates bytes.
func Generate(ctx context.Context, root string, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{Root: root})
}

// GenerateDocument walks the tree and returns the templates document before
// encoding, for callers that want the paragraphs rather than the bytes.
func GenerateDocument(ctx context.Context, root string, options ...generator.Option) (debconf.Document, error) {
	gen := generator.New(options...)
	return gen.Document(ctx, root)
}

// Audit walks the tree and returns every symlink the curated tables do not
// cover, instead of stopping at the first one.
func Audit(ctx context.Context, root string, options ...generator.Option) ([]string, error) {
	gen := generator.New(options...)
	return gen.Audit(ctx, root)
}

// WithAreas overrides the fixed default area list.
func WithAreas(areas []string) generator.Option {
	return generator.WithAreas(areas)
}

// WithPolicy injects a symlink classification policy.
func WithPolicy(policy *zoneinfo.Policy) generator.Option {
	return generator.WithPolicy(policy)
}

// WithLogger injects a structured logger used for progress reporting.
func WithLogger(logger *slog.Logger) generator.Option {
	return generator.WithLogger(logger)
}
