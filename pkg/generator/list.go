package generator

import (
	"bytes"
	"context"

	"github.com/goliatone/go-tzdebconf/pkg/zoneinfo"
)

// ListRenderer emits one timezone identifier per line in area order: the
// plain-text list format form components consume directly.
type ListRenderer struct{}

// Name identifies the renderer in the registry.
func (ListRenderer) Name() string { return "list" }

// Render writes the identifiers in collection order, one per line.
func (ListRenderer) Render(ctx context.Context, table *zoneinfo.Table) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for _, area := range table.Areas {
		for _, zone := range table.Zones[area] {
			buf.WriteString(zone)
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}
