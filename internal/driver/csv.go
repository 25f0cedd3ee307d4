package driver

import (
	"encoding/csv"
	"fmt"

	"github.com/nyonicai/squirrel-core/internal/catalog"
	"github.com/nyonicai/squirrel-core/internal/fsspec"
)

// CSVDriver reads a CSV file with a header row; each data row becomes a
// record keyed by the header columns.
type CSVDriver struct {
	catalog *catalog.Catalog
	path    string
}

// CSVFactory constructs CSVDriver instances under the driver name "csv".
type CSVFactory struct{}

// Name implements catalog.DriverFactory.
func (CSVFactory) Name() string { return "csv" }

// New implements catalog.DriverFactory.
func (CSVFactory) New(cat *catalog.Catalog, kwargs map[string]any) (catalog.Driver, error) {
	path, err := pathKwarg(kwargs)
	if err != nil {
		return nil, fmt.Errorf("csv driver: %w", err)
	}
	return &CSVDriver{catalog: cat, path: path}, nil
}

// Name implements catalog.Driver.
func (d *CSVDriver) Name() string { return "csv" }

// Records implements RecordDriver.
func (d *CSVDriver) Records() ([]map[string]any, error) {
	fs, err := fsspec.ForURL(d.path)
	if err != nil {
		return nil, err
	}
	f, err := fs.Open(d.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", d.path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]map[string]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]any, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

var _ RecordDriver = (*CSVDriver)(nil)
