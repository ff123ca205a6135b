package zoneinfo

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/goliatone/go-tzdebconf/pkg/natsort"
)

// maxDepth bounds the traversal to <area>/<city> and <area>/<region>/<city>.
// The compiled tree never nests deeper; anything below that is an error, not
// something to walk into.
const maxDepth = 2

// Table holds the selectable timezone identifiers collected from a compiled
// zoneinfo tree, keyed by area and ordered for presentation.
type Table struct {
	// Areas preserves the presentation order used to collect the table.
	Areas []string
	// Zones maps each area to its ordered identifiers, area prefix included
	// ("America/Argentina/Ushuaia").
	Zones map[string][]string
}

// UnclassifiedSymlinkError reports a symlink present in neither curated
// alias table. It is fatal: the tables are stale relative to the input data
// and a human has to review the new link.
type UnclassifiedSymlinkError struct {
	Path string
}

func (e *UnclassifiedSymlinkError) Error() string {
	return fmt.Sprintf("zoneinfo: unclassified symlink %q: update the curated alias tables", e.Path)
}

// Walker collects selectable timezone identifiers from a compiled zoneinfo
// tree rooted at a directory. Construct with NewWalker.
type Walker struct {
	root   string
	policy *Policy
}

// NewWalker validates the root directory and the policy. A nil policy means
// DefaultPolicy.
func NewWalker(root string, policy *Policy) (*Walker, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("zoneinfo: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("zoneinfo: %q is not a directory", root)
	}
	if policy == nil {
		policy = DefaultPolicy()
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Walker{root: root, policy: policy}, nil
}

// Zones returns the ordered, policy-filtered timezone identifiers under one
// area. Obsolete aliases are dropped, alternate names kept, and any symlink
// missing from both tables stops the walk with *UnclassifiedSymlinkError.
func (w *Walker) Zones(area string) ([]string, error) {
	return w.collect(area, 1, func(rel string) error {
		return &UnclassifiedSymlinkError{Path: rel}
	})
}

// WalkAll collects every listed area into a Table. An empty list means the
// fixed default area list.
func (w *Walker) WalkAll(areaList []string) (*Table, error) {
	if len(areaList) == 0 {
		areaList = Areas()
	}
	table := &Table{
		Areas: append([]string{}, areaList...),
		Zones: make(map[string][]string, len(areaList)),
	}
	for _, area := range table.Areas {
		zones, err := w.Zones(area)
		if err != nil {
			return nil, err
		}
		table.Zones[area] = zones
	}
	return table, nil
}

// Audit walks every listed area and returns all unclassified symlink paths
// instead of stopping at the first one. Useful when staging a new upstream
// release to see the full set of links that need a verdict.
func (w *Walker) Audit(areaList []string) ([]string, error) {
	if len(areaList) == 0 {
		areaList = Areas()
	}
	var unknown []string
	for _, area := range areaList {
		_, err := w.collect(area, 1, func(rel string) error {
			unknown = append(unknown, rel)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return unknown, nil
}

// collect lists the directory at rel, orders entries naturally, and gathers
// leaf paths in traversal order, expanding subdirectories in place. onUnknown
// decides what happens to an unclassified symlink: returning an error aborts
// the walk, returning nil skips the entry.
func (w *Walker) collect(rel string, depth int, onUnknown func(rel string) error) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(w.root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, fmt.Errorf("zoneinfo: read %s: %w", rel, err)
	}

	byName := make(map[string]fs.DirEntry, len(entries))
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		byName[entry.Name()] = entry
		names = append(names, entry.Name())
	}
	natsort.Strings(names)

	var out []string
	for _, name := range names {
		entry := byName[name]
		childRel := path.Join(rel, name)

		if entry.IsDir() {
			if depth >= maxDepth {
				return nil, fmt.Errorf("zoneinfo: unexpected directory %q below the region level", childRel)
			}
			sub, err := w.collect(childRel, depth+1, onUnknown)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
			continue
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			switch w.policy.Classify(childRel) {
			case ClassObsolete:
				continue
			case ClassAlternate:
				// selectable, falls through to the append below
			default:
				if err := onUnknown(childRel); err != nil {
					return nil, err
				}
				continue
			}
		}

		out = append(out, childRel)
	}
	return out, nil
}
