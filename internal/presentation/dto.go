package presentation

import (
	"github.com/nyonicai/squirrel-core/internal/catalog"
	"github.com/nyonicai/squirrel-core/internal/service"
)

// SourceDTO represents one versioned source for presentation.
type SourceDTO struct {
	Identifier   string         `json:"identifier"`
	Version      int            `json:"version"`
	Driver       string         `json:"driver"`
	DriverKwargs map[string]any `json:"driver_kwargs,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// CatalogDTO represents a catalog: every version of every identifier.
type CatalogDTO struct {
	Identifiers int         `json:"identifiers"`
	Sources     []SourceDTO `json:"sources"`
}

// DiffDTO represents a catalog diff for presentation.
type DiffDTO struct {
	Added    []string `json:"added"`
	Removed  []string `json:"removed"`
	Modified []string `json:"modified"`
}

// FromCatalogSource converts one source to a DTO.
func FromCatalogSource(cs *catalog.CatalogSource) SourceDTO {
	return SourceDTO{
		Identifier:   cs.Identifier(),
		Version:      cs.Version(),
		Driver:       cs.Driver,
		DriverKwargs: cs.DriverKwargs,
		Metadata:     cs.Metadata,
	}
}

// FromCatalog converts a whole catalog, ordered by identifier and
// ascending version.
func FromCatalog(cat *catalog.Catalog) CatalogDTO {
	dto := CatalogDTO{Identifiers: cat.Len()}
	for _, id := range cat.Keys() {
		entry, _ := cat.Entry(id)
		for _, v := range entry.VersionNumbers() {
			cs, _ := entry.Version(v)
			dto.Sources = append(dto.Sources, FromCatalogSource(cs))
		}
	}
	return dto
}

// FromDiff converts a service diff, rendering keys as identifier@version.
func FromDiff(d service.Diff) DiffDTO {
	return DiffDTO{
		Added:    keyStrings(d.Added),
		Removed:  keyStrings(d.Removed),
		Modified: keyStrings(d.Modified),
	}
}

func keyStrings(keys []catalog.CatalogKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}
