package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// Catalog errors
var (
	ErrNotFound       = errors.New("identifier not found in catalog")
	ErrInvalidVersion = errors.New("version must be a positive integer")
)

// DefaultVersion is the version assigned by Catalog.Set when the caller
// does not choose one.
const DefaultVersion = 1

// Catalog is the versioned source registry: a mapping from identifier
// to all registered versions of its source. The zero value is not
// usable; construct with New. Catalogs are not safe for concurrent
// mutation; callers sharing one across goroutines must serialize access.
type Catalog struct {
	sources map[string]*VersionedEntry
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		sources: make(map[string]*VersionedEntry),
	}
}

// Contains reports whether the identifier is registered.
func (c *Catalog) Contains(identifier string) bool {
	_, ok := c.sources[identifier]
	return ok
}

// Len returns the number of distinct identifiers, not the total number
// of versions.
func (c *Catalog) Len() int {
	return len(c.sources)
}

// Keys returns all identifiers, sorted.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.sources))
	for k := range c.sources {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set registers src under identifier at DefaultVersion, replacing any
// source already at that version. Use At(identifier).Set for a
// caller-chosen version.
func (c *Catalog) Set(identifier string, src Source) {
	c.setVersion(identifier, DefaultVersion, src)
}

// Get returns the source at the greatest version of identifier.
// ok is false when the identifier is absent; reading a missing
// identifier is never an error.
func (c *Catalog) Get(identifier string) (*CatalogSource, bool) {
	entry, ok := c.sources[identifier]
	if !ok {
		return nil, false
	}
	return entry.Latest()
}

// GetKey resolves a fully qualified key, honoring the latest-version
// sentinel.
func (c *Catalog) GetKey(key CatalogKey) (*CatalogSource, bool) {
	entry, ok := c.sources[key.Identifier]
	if !ok {
		return nil, false
	}
	return entry.Version(key.Version)
}

// At returns a handle for the identifier. The handle is valid whether or
// not the identifier exists; assigning a version through it materializes
// the entry. This is the create-on-assign path:
//
//	cat.At("ds1").Set(2, src)
func (c *Catalog) At(identifier string) SourceRef {
	return SourceRef{identifier: identifier, catalog: c}
}

// Entry returns the versioned entry for the identifier.
func (c *Catalog) Entry(identifier string) (*VersionedEntry, bool) {
	entry, ok := c.sources[identifier]
	return entry, ok
}

// Delete removes the identifier and every version under it.
// Deleting a missing identifier is an error.
func (c *Catalog) Delete(identifier string) error {
	if _, ok := c.sources[identifier]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, identifier)
	}
	delete(c.sources, identifier)
	return nil
}

// Items returns (identifier, latest source) pairs sorted by identifier.
func (c *Catalog) Items() []*CatalogSource {
	items := make([]*CatalogSource, 0, len(c.sources))
	for _, k := range c.Keys() {
		if cs, ok := c.sources[k].Latest(); ok {
			items = append(items, cs)
		}
	}
	return items
}

// Equal reports deep equality: identical identifier sets and, for every
// identifier and version, structurally equal source payloads. Equal
// identifier/version sets with diverging payloads are not equal.
func (c *Catalog) Equal(other *Catalog) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.sources) != len(other.sources) {
		return false
	}

	for id, entry := range c.sources {
		otherEntry, ok := other.sources[id]
		if !ok || len(entry.versions) != len(otherEntry.versions) {
			return false
		}
		for v, cs := range entry.versions {
			otherCS, ok := otherEntry.versions[v]
			if !ok || !cs.Equal(otherCS) {
				return false
			}
		}
	}
	return true
}

// Copy returns a catalog structurally equal to the receiver sharing no
// mutable state with it. The payload maps are recursively cloned; the
// Encode/Decode round-trip is the reference behavior and the clone is
// checked against it in tests.
func (c *Catalog) Copy() *Catalog {
	out := New()
	for id, entry := range c.sources {
		for v, cs := range entry.versions {
			out.setVersion(id, v, cs.Source.Clone())
		}
	}
	return out
}

// String renders the identifier set, mirroring the registry's role as a
// keyed collection.
func (c *Catalog) String() string {
	return fmt.Sprintf("Catalog%v", c.Keys())
}

// setVersion is the single write path: every registration funnels
// through here so the identifier invariant holds everywhere.
func (c *Catalog) setVersion(identifier string, version int, src Source) {
	entry, ok := c.sources[identifier]
	if !ok {
		entry = newVersionedEntry(identifier)
		c.sources[identifier] = entry
	}
	entry.versions[version] = newCatalogSource(src, identifier, version, c)
}
