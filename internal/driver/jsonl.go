package driver

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/nyonicai/squirrel-core/internal/catalog"
	"github.com/nyonicai/squirrel-core/internal/fsspec"
)

// JSONLDriver reads a file with one JSON object per line.
type JSONLDriver struct {
	catalog *catalog.Catalog
	path    string
}

// JSONLFactory constructs JSONLDriver instances under the driver name
// "jsonl".
type JSONLFactory struct{}

// Name implements catalog.DriverFactory.
func (JSONLFactory) Name() string { return "jsonl" }

// New implements catalog.DriverFactory.
func (JSONLFactory) New(cat *catalog.Catalog, kwargs map[string]any) (catalog.Driver, error) {
	path, err := pathKwarg(kwargs)
	if err != nil {
		return nil, fmt.Errorf("jsonl driver: %w", err)
	}
	return &JSONLDriver{catalog: cat, path: path}, nil
}

// Name implements catalog.Driver.
func (d *JSONLDriver) Name() string { return "jsonl" }

// Records implements RecordDriver.
func (d *JSONLDriver) Records() ([]map[string]any, error) {
	fs, err := fsspec.ForURL(d.path)
	if err != nil {
		return nil, err
	}
	f, err := fs.Open(d.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []map[string]any
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Bytes()
		if len(text) == 0 {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal(text, &rec); err != nil {
			return nil, fmt.Errorf("parsing %s line %d: %w", d.path, line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", d.path, err)
	}
	return records, nil
}

var _ RecordDriver = (*JSONLDriver)(nil)
