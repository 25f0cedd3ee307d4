package catalog

import "fmt"

// SourceRef is the lookup-result handle returned by Catalog.At. It is
// either bound to an existing entry or, for a missing identifier, a
// placeholder carrying only the identifier and the target catalog.
// The placeholder holds no data and must never be stored; its only
// legal operation is Set, which materializes the entry
// (create-on-assign). SourceRef reads through to the live catalog, so a
// handle taken before an assignment observes the assignment.
type SourceRef struct {
	identifier string
	catalog    *Catalog
}

// Identifier returns the identifier the handle addresses.
func (r SourceRef) Identifier() string {
	return r.identifier
}

// Exists reports whether the identifier is present in the catalog.
func (r SourceRef) Exists() bool {
	return r.catalog.Contains(r.identifier)
}

// Latest returns the source at the greatest version present.
// ok is false when the identifier does not exist.
func (r SourceRef) Latest() (*CatalogSource, bool) {
	entry, ok := r.catalog.sources[r.identifier]
	if !ok {
		return nil, false
	}
	return entry.Latest()
}

// Version returns the source at exactly version v (LatestVersion is
// accepted as the sentinel). ok is false when absent.
func (r SourceRef) Version(v int) (*CatalogSource, bool) {
	entry, ok := r.catalog.sources[r.identifier]
	if !ok {
		return nil, false
	}
	return entry.Version(v)
}

// Contains reports whether version v exists under the identifier.
// On a placeholder handle this is always false: nothing exists yet.
func (r SourceRef) Contains(v int) bool {
	entry, ok := r.catalog.sources[r.identifier]
	if !ok {
		return false
	}
	return entry.Contains(v)
}

// Versions returns a copy of the version map, or an empty map for a
// missing identifier.
func (r SourceRef) Versions() map[int]*CatalogSource {
	entry, ok := r.catalog.sources[r.identifier]
	if !ok {
		return map[int]*CatalogSource{}
	}
	return entry.Versions()
}

// Set registers src under the handle's identifier at version v,
// materializing the identifier if it does not exist yet. v must be
// positive; the latest-version sentinel is not assignable.
func (r SourceRef) Set(v int, src Source) error {
	if v <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVersion, v)
	}
	r.catalog.setVersion(r.identifier, v, src)
	return nil
}
