package tracing

// Span attribute keys for catalog tracing.
const (
	// Catalog attributes
	AttrCatalogLen     = "catalog.len"
	AttrCatalogFiles   = "catalog.files"
	AttrCatalogDirs    = "catalog.dirs"
	AttrCatalogPlugins = "catalog.plugins"

	// Source attributes
	AttrSourceIdentifier = "source.identifier"
	AttrSourceVersion    = "source.version"
	AttrSourceDriver     = "source.driver"

	// File attributes
	AttrFilePath = "file.path"

	// Error attributes
	AttrErrorMessage = "error.message"
	AttrErrorType    = "error.type"
)

// Span names for the load pipeline.
const (
	SpanLoad       = "catalog.load"
	SpanDecodeFile = "catalog.decode_file"
	SpanPlugins    = "catalog.from_plugins"
	SpanReload     = "catalog.reload"
)
