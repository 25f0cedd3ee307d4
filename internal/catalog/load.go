package catalog

import (
	"fmt"

	"github.com/nyonicai/squirrel-core/internal/fsspec"
)

// CatalogExt is the file extension catalog documents are stored under.
const CatalogExt = ".yaml"

// FromFiles builds a catalog from a list of file URLs or paths. Each
// file is decoded and joined onto the accumulator, so a duplicate
// (identifier, version) pair across files is ErrNotDisjoint rather than
// a silent overwrite. Filesystem and decode errors propagate wrapped.
func FromFiles(paths []string) (*Catalog, error) {
	cat := New()
	for _, p := range paths {
		fs, err := fsspec.ForURL(p)
		if err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(p)
		if err != nil {
			return nil, err
		}
		next, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", p, err)
		}
		cat, err = cat.Join(next)
		if err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", p, err)
		}
	}
	return cat, nil
}

// FromDirs builds a catalog from every .yaml file in the given
// directory URLs, with the same disjointness requirement as FromFiles.
func FromDirs(paths []string) (*Catalog, error) {
	var files []string
	for _, p := range paths {
		fs, err := fsspec.ForURL(p)
		if err != nil {
			return nil, err
		}
		found, err := fs.List(p, CatalogExt)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return FromFiles(files)
}

// FromPlugins builds a catalog from plugin-contributed fragments.
// Fragments merge by assignment: for a (identifier, version) registered
// by several plugins, the last registered wins. No disjointness
// requirement, unlike file loading.
func FromPlugins(provider FragmentProvider) (*Catalog, error) {
	cat := New()
	for _, fragment := range provider.Fragments() {
		for _, ks := range fragment {
			if err := cat.At(ks.Key.Identifier).Set(ks.Key.Version, ks.Source); err != nil {
				return nil, fmt.Errorf("plugin fragment %s: %w", ks.Key, err)
			}
		}
	}
	return cat, nil
}

// ToFile encodes the catalog and writes it to the given URL or path.
func (c *Catalog) ToFile(path string) error {
	fs, err := fsspec.ForURL(path)
	if err != nil {
		return err
	}
	data, err := Encode(c)
	if err != nil {
		return err
	}
	return fs.WriteFile(path, data)
}
