package catalog

import "sort"

// VersionedEntry holds every version registered under one identifier.
// All contained CatalogSources share that identifier.
type VersionedEntry struct {
	identifier string
	versions   map[int]*CatalogSource
}

func newVersionedEntry(identifier string) *VersionedEntry {
	return &VersionedEntry{
		identifier: identifier,
		versions:   make(map[int]*CatalogSource),
	}
}

// Identifier returns the identifier shared by every version in the entry.
func (e *VersionedEntry) Identifier() string {
	return e.identifier
}

// Latest returns the source with the numerically greatest version.
// ok is false only for an empty entry, which a catalog never stores.
func (e *VersionedEntry) Latest() (*CatalogSource, bool) {
	var best *CatalogSource
	for _, cs := range e.versions {
		if best == nil || cs.version > best.version {
			best = cs
		}
	}
	return best, best != nil
}

// Version returns the source at exactly version v. Version LatestVersion
// is accepted as the sentinel and resolves like Latest.
func (e *VersionedEntry) Version(v int) (*CatalogSource, bool) {
	if v == LatestVersion {
		return e.Latest()
	}
	cs, ok := e.versions[v]
	return cs, ok
}

// Contains reports whether version v exists in the entry.
func (e *VersionedEntry) Contains(v int) bool {
	_, ok := e.Version(v)
	return ok
}

// Versions returns a copy of the version map.
func (e *VersionedEntry) Versions() map[int]*CatalogSource {
	out := make(map[int]*CatalogSource, len(e.versions))
	for v, cs := range e.versions {
		out[v] = cs
	}
	return out
}

// VersionNumbers returns the version numbers present, ascending.
func (e *VersionedEntry) VersionNumbers() []int {
	nums := make([]int, 0, len(e.versions))
	for v := range e.versions {
		nums = append(nums, v)
	}
	sort.Ints(nums)
	return nums
}

// Len returns the number of versions in the entry.
func (e *VersionedEntry) Len() int {
	return len(e.versions)
}
