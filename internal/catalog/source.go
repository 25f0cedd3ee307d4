package catalog

// Source describes a driver-backed data source: the driver name, the
// keyword parameters passed to the driver constructor, and free-form
// metadata. Both maps are opaque to the catalog and may hold arbitrarily
// nested values.
type Source struct {
	Driver       string         `yaml:"driver"`
	DriverKwargs map[string]any `yaml:"driver_kwargs,omitempty"`
	Metadata     map[string]any `yaml:"metadata,omitempty"`
}

// Equal reports deep structural equality of all three fields.
func (s Source) Equal(other Source) bool {
	if s.Driver != other.Driver {
		return false
	}
	return deepEqualMap(s.DriverKwargs, other.DriverKwargs) &&
		deepEqualMap(s.Metadata, other.Metadata)
}

// Clone returns a Source sharing no mutable state with the receiver.
func (s Source) Clone() Source {
	return Source{
		Driver:       s.Driver,
		DriverKwargs: deepCloneMap(s.DriverKwargs),
		Metadata:     deepCloneMap(s.Metadata),
	}
}

// deepEqualMap compares two payload maps structurally. Nil and empty
// maps compare equal; YAML round-trips do not distinguish them.
func deepEqualMap(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !deepEqualValue(av, bv) {
			return false
		}
	}
	return true
}

func deepEqualValue(a, b any) bool {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		return ok && deepEqualMap(av, bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqualValue(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// deepCloneMap recursively copies a payload map. Values that are neither
// maps nor slices are treated as immutable scalars.
func deepCloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCloneValue(v)
	}
	return out
}

func deepCloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = deepCloneValue(e)
		}
		return out
	default:
		return v
	}
}
