package service

import (
	"sort"

	"github.com/nyonicai/squirrel-core/internal/catalog"
)

// Diff describes how one catalog differs from another, per
// (identifier, version) pair.
type Diff struct {
	Added    []catalog.CatalogKey
	Removed  []catalog.CatalogKey
	Modified []catalog.CatalogKey
}

// Empty reports whether the diff carries no changes.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Modified) == 0
}

// Len returns the total number of changed pairs.
func (d Diff) Len() int {
	return len(d.Added) + len(d.Removed) + len(d.Modified)
}

// DiffCatalogs compares two catalogs pairwise. Presence-only changes
// land in Added/Removed; pairs present in both with diverging payloads
// land in Modified. Results are sorted by identifier then version.
func DiffCatalogs(before, after *catalog.Catalog) Diff {
	if before == nil {
		before = catalog.New()
	}
	if after == nil {
		after = catalog.New()
	}

	var d Diff

	for _, id := range after.Keys() {
		entry, _ := after.Entry(id)
		for _, v := range entry.VersionNumbers() {
			cs, _ := entry.Version(v)
			old, ok := before.GetKey(catalog.CatalogKey{Identifier: id, Version: v})
			switch {
			case !ok:
				d.Added = append(d.Added, cs.Key())
			case !old.Equal(cs):
				d.Modified = append(d.Modified, cs.Key())
			}
		}
	}

	for _, id := range before.Keys() {
		entry, _ := before.Entry(id)
		for _, v := range entry.VersionNumbers() {
			cs, _ := entry.Version(v)
			if _, ok := after.GetKey(cs.Key()); !ok {
				d.Removed = append(d.Removed, cs.Key())
			}
		}
	}

	sortKeys(d.Added)
	sortKeys(d.Removed)
	sortKeys(d.Modified)
	return d
}

func sortKeys(keys []catalog.CatalogKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Identifier != keys[j].Identifier {
			return keys[i].Identifier < keys[j].Identifier
		}
		return keys[i].Version < keys[j].Version
	})
}
