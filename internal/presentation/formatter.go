package presentation

import (
	"encoding/json"
	"fmt"
	"io"
)

// Formatter handles CLI output formatting.
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a formatter writing to writer.
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{writer: writer}
}

// FormatJSON renders any DTO as indented JSON.
func (f *Formatter) FormatJSON(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatCatalogTable renders a catalog as aligned plain-text rows.
func (f *Formatter) FormatCatalogTable(dto CatalogDTO) error {
	if len(dto.Sources) == 0 {
		_, err := fmt.Fprintln(f.writer, "catalog is empty")
		return err
	}

	width := len("IDENTIFIER")
	for _, s := range dto.Sources {
		if len(s.Identifier) > width {
			width = len(s.Identifier)
		}
	}

	if _, err := fmt.Fprintf(f.writer, "%-*s  %-8s  %s\n", width, "IDENTIFIER", "VERSION", "DRIVER"); err != nil {
		return err
	}
	for _, s := range dto.Sources {
		if _, err := fmt.Fprintf(f.writer, "%-*s  %-8d  %s\n", width, s.Identifier, s.Version, s.Driver); err != nil {
			return err
		}
	}
	return nil
}
