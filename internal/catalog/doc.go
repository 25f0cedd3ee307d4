// Package catalog implements the versioned source registry.
//
// A Catalog maps string identifiers to numbered versions of a Source
// (a driver name plus its configuration and metadata). Catalogs compose
// through set algebra over (identifier, version) pairs:
//   - Union: best-effort merge, the argument wins on conflicts
//   - Intersection: common pairs, errors if payloads disagree
//   - Difference: symmetric difference
//   - Join: union that requires disjoint operands
//   - Filter / Slice: predicate and identifier projections
//
// Every composition operation deep-copies its operands and returns a
// brand-new Catalog, so no two catalogs ever share mutable state.
//
// # Create-on-assign
//
// Looking up a missing identifier is not an error. Catalog.At returns a
// SourceRef handle for any identifier; on a missing one the handle's only
// legal operation is Set, which materializes the entry:
//
//	cat.At("ds1").Set(2, src) // works whether or not "ds1" exists
//
// # Collaborators
//
// Driver resolution and plugin-contributed catalog fragments come in
// through the DriverResolver and FragmentProvider interfaces, injected
// at the call site. The package has no global registry; see
// internal/plugin for the standard implementation.
package catalog
