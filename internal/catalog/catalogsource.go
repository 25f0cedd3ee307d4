package catalog

import (
	"errors"
	"fmt"
)

// Driver resolution errors
var (
	ErrDriverNotFound = errors.New("driver not found")
)

// CatalogSource is a Source bound to its identifier, concrete version
// and owning catalog. Instances are immutable once created; reassigning
// an (identifier, version) slot replaces the instance. The catalog
// back-reference is a relation, not ownership: the registry is the only
// thing keeping entries alive.
type CatalogSource struct {
	Source

	identifier string
	version    int
	catalog    *Catalog
}

func newCatalogSource(src Source, identifier string, version int, cat *Catalog) *CatalogSource {
	return &CatalogSource{
		Source:     src,
		identifier: identifier,
		version:    version,
		catalog:    cat,
	}
}

// Identifier returns the identifier the source is registered under.
func (cs *CatalogSource) Identifier() string {
	return cs.identifier
}

// Version returns the concrete version of the source, always >= 1.
func (cs *CatalogSource) Version() int {
	return cs.version
}

// Catalog returns the owning catalog.
func (cs *CatalogSource) Catalog() *Catalog {
	return cs.catalog
}

// Key returns the fully qualified catalog key of the source.
func (cs *CatalogSource) Key() CatalogKey {
	return CatalogKey{Identifier: cs.identifier, Version: cs.version}
}

// Equal extends Source equality with identifier and version equality.
// The catalog back-reference does not participate: copies of a catalog
// hold structurally equal but distinct sources.
func (cs *CatalogSource) Equal(other *CatalogSource) bool {
	if cs == nil || other == nil {
		return cs == other
	}
	return cs.identifier == other.identifier &&
		cs.version == other.version &&
		cs.Source.Equal(other.Source)
}

// GetDriver resolves the source's driver name against the given resolver
// and constructs a driver instance. overrides win over the stored
// DriverKwargs on key conflicts. Pure lookup and construct: no caching,
// no lifecycle management of the returned driver.
func (cs *CatalogSource) GetDriver(resolver DriverResolver, overrides map[string]any) (Driver, error) {
	for _, factory := range resolver.Drivers() {
		if factory.Name() != cs.Driver {
			continue
		}

		kwargs := deepCloneMap(cs.DriverKwargs)
		if kwargs == nil && len(overrides) > 0 {
			kwargs = make(map[string]any, len(overrides))
		}
		for k, v := range overrides {
			kwargs[k] = v
		}

		return factory.New(cs.catalog, kwargs)
	}

	return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, cs.Driver)
}
