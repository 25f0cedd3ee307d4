package catalog

import (
	"errors"
	"fmt"
)

// Set-algebra errors
var (
	ErrNotDisjoint       = errors.New("catalogs are not disjoint")
	ErrConflictingSource = errors.New("catalogs disagree on a shared source")
	ErrUnknownIdentifier = errors.New("identifier not present in catalog")
)

// Union returns a catalog containing every (identifier, version) pair
// present in either operand. When both operands define the same pair,
// other's payload wins: other is merged on top of a copy of the
// receiver. Best-effort merge, never fails.
func (c *Catalog) Union(other *Catalog) *Catalog {
	out := c.Copy()
	cp := other.Copy()

	for _, id := range cp.Keys() {
		for v, cs := range cp.sources[id].versions {
			out.setVersion(id, v, cs.Source)
		}
	}
	return out
}

// Intersection returns a catalog containing only the (identifier,
// version) pairs present in both operands. A shared pair whose payloads
// differ is a caller bug and yields ErrConflictingSource rather than a
// silent pick.
func (c *Catalog) Intersection(other *Catalog) (*Catalog, error) {
	cp1 := c.Copy()
	cp2 := other.Copy()

	out := New()
	for _, id := range cp1.Keys() {
		entry2, ok := cp2.sources[id]
		if !ok {
			continue
		}
		for v, cs := range cp1.sources[id].versions {
			cs2, ok := entry2.versions[v]
			if !ok {
				continue
			}
			if !cs.Equal(cs2) {
				return nil, fmt.Errorf("%w: %s", ErrConflictingSource, cs.Key())
			}
			out.setVersion(id, v, cs.Source)
		}
	}
	return out, nil
}

// Difference returns the symmetric difference: every (identifier,
// version) pair present in exactly one operand.
func (c *Catalog) Difference(other *Catalog) *Catalog {
	cp1 := c.Copy()
	cp2 := other.Copy()

	out := New()
	for _, pair := range [][2]*Catalog{{cp1, cp2}, {cp2, cp1}} {
		have, against := pair[0], pair[1]
		for _, id := range have.Keys() {
			otherEntry, inOther := against.sources[id]
			for v, cs := range have.sources[id].versions {
				if inOther && otherEntry.Contains(v) {
					continue
				}
				out.setVersion(id, v, cs.Source)
			}
		}
	}
	return out
}

// Join unions two catalogs that must not overlap on any (identifier,
// version) pair. Overlap is ErrNotDisjoint: joining is for combining
// independently loaded catalogs where a duplicate means a mistake.
func (c *Catalog) Join(other *Catalog) (*Catalog, error) {
	common, err := c.Intersection(other)
	if err != nil {
		// Payload disagreement on a shared pair: still an overlap.
		return nil, fmt.Errorf("%w: %v", ErrNotDisjoint, err)
	}
	if common.Len() > 0 {
		return nil, fmt.Errorf("%w: shared identifiers %v", ErrNotDisjoint, common.Keys())
	}
	return c.Union(other), nil
}

// Filter returns a catalog with every (identifier, version) pair whose
// source satisfies the predicate.
func (c *Catalog) Filter(predicate func(*CatalogSource) bool) *Catalog {
	cp := c.Copy()

	out := New()
	for _, id := range cp.Keys() {
		for v, cs := range cp.sources[id].versions {
			if predicate(cs) {
				out.setVersion(id, v, cs.Source)
			}
		}
	}
	return out
}

// Slice returns a catalog with all versions of each named identifier.
// An identifier absent from the receiver is ErrUnknownIdentifier: a
// silent no-op here would hide typos at call sites.
func (c *Catalog) Slice(identifiers []string) (*Catalog, error) {
	cp := c.Copy()

	out := New()
	for _, id := range identifiers {
		entry, ok := cp.sources[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownIdentifier, id)
		}
		for v, cs := range entry.versions {
			out.setVersion(id, v, cs.Source)
		}
	}
	return out, nil
}
