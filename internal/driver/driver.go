// Package driver ships the builtin drivers: small file-backed readers
// resolved by name through a plugin registry. They exist so the
// resolution path (Source.Driver → factory → constructed driver) is
// exercised end to end; real deployments contribute their own factories.
package driver

import (
	"errors"
	"fmt"

	"github.com/nyonicai/squirrel-core/internal/catalog"
)

// Driver construction errors
var (
	ErrMissingPath = errors.New("driver requires a 'path' kwarg")
)

// RecordDriver is the shared surface of the builtin drivers: they
// expose their file as a sequence of string-keyed records.
type RecordDriver interface {
	catalog.Driver

	// Records reads and returns every record in the backing file.
	Records() ([]map[string]any, error)
}

// pathKwarg extracts the mandatory 'path' kwarg.
func pathKwarg(kwargs map[string]any) (string, error) {
	v, ok := kwargs["path"]
	if !ok {
		return "", ErrMissingPath
	}
	p, ok := v.(string)
	if !ok || p == "" {
		return "", fmt.Errorf("%w: got %T", ErrMissingPath, v)
	}
	return p, nil
}

// Builtin returns factories for every builtin driver, ready to register
// with a plugin registry.
func Builtin() []catalog.DriverFactory {
	return []catalog.DriverFactory{
		CSVFactory{},
		JSONLFactory{},
	}
}
