package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlSource is the serialized form of one (key, source) pair.
type yamlSource struct {
	Key    CatalogKey `yaml:"key"`
	Source `yaml:",inline"`
}

// yamlCatalog is the document root of the textual catalog format:
//
//	sources:
//	  - key: [identifier, version]
//	    driver: csv
//	    driver_kwargs: {...}
//	    metadata: {...}
type yamlCatalog struct {
	Sources []yamlSource `yaml:"sources"`
}

// Encode serializes the catalog. Entries are ordered by identifier and
// ascending version so output is deterministic and diffable.
func Encode(c *Catalog) ([]byte, error) {
	doc := yamlCatalog{Sources: make([]yamlSource, 0, c.Len())}
	for _, id := range c.Keys() {
		entry := c.sources[id]
		for _, v := range entry.VersionNumbers() {
			cs := entry.versions[v]
			doc.Sources = append(doc.Sources, yamlSource{
				Key:    cs.Key(),
				Source: cs.Source,
			})
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return data, nil
}

// Decode deserializes a catalog from its textual form. The result is
// isomorphic to the encoded catalog: same identifiers, versions and
// source payloads.
func Decode(data []byte) (*Catalog, error) {
	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	out := New()
	for _, ys := range doc.Sources {
		if ys.Key.Identifier == "" {
			return nil, fmt.Errorf("%w: empty identifier", ErrInvalidKey)
		}
		if ys.Key.Version <= 0 {
			return nil, fmt.Errorf("%w: stored version must be positive, got %d for %q",
				ErrInvalidVersion, ys.Key.Version, ys.Key.Identifier)
		}
		out.setVersion(ys.Key.Identifier, ys.Key.Version, ys.Source)
	}
	return out, nil
}

// FromString builds a catalog from YAML text.
func FromString(text string) (*Catalog, error) {
	return Decode([]byte(text))
}
