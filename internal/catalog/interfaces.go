package catalog

// Driver is the runtime object that performs data access for a source.
// Concrete drivers live outside the core; internal/driver ships the
// builtin ones.
type Driver interface {
	// Name returns the driver name the instance was registered under.
	Name() string
}

// DriverFactory constructs driver instances. Factories are contributed
// by plugins; the factory name is matched against Source.Driver during
// resolution.
type DriverFactory interface {
	// Name returns the driver name this factory serves.
	Name() string

	// New constructs a driver bound to the owning catalog. kwargs is the
	// source's DriverKwargs with caller overrides already merged in.
	New(cat *Catalog, kwargs map[string]any) (Driver, error)
}

// DriverResolver exposes the flat collection of driver factories
// contributed by all active plugins.
type DriverResolver interface {
	Drivers() []DriverFactory
}

// KeyedSource is a catalog fragment element: a Source addressed by a
// fully qualified CatalogKey.
type KeyedSource struct {
	Key    CatalogKey
	Source Source
}

// FragmentProvider exposes plugin-contributed catalog fragments, one
// slice per contributing plugin, in registration order.
type FragmentProvider interface {
	Fragments() [][]KeyedSource
}
