package presentation

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nyonicai/squirrel-core/internal/catalog"
	"github.com/nyonicai/squirrel-core/internal/service"
)

func sampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()
	require.NoError(t, cat.At("beta").Set(1, catalog.Source{
		Driver:       "jsonl",
		DriverKwargs: map[string]any{"path": "/b.jsonl"},
	}))
	require.NoError(t, cat.At("alpha").Set(2, catalog.Source{Driver: "csv"}))
	require.NoError(t, cat.At("alpha").Set(1, catalog.Source{
		Driver:   "csv",
		Metadata: map[string]any{"owner": "ml-team"},
	}))
	return cat
}

func TestFromCatalog(t *testing.T) {
	dto := FromCatalog(sampleCatalog(t))

	require.Equal(t, 2, dto.Identifiers)
	require.Len(t, dto.Sources, 3)

	// Ordered by identifier, then ascending version.
	require.Equal(t, "alpha", dto.Sources[0].Identifier)
	require.Equal(t, 1, dto.Sources[0].Version)
	require.Equal(t, "ml-team", dto.Sources[0].Metadata["owner"])
	require.Equal(t, "alpha", dto.Sources[1].Identifier)
	require.Equal(t, 2, dto.Sources[1].Version)
	require.Equal(t, "beta", dto.Sources[2].Identifier)
	require.Equal(t, "/b.jsonl", dto.Sources[2].DriverKwargs["path"])
}

func TestFromDiff(t *testing.T) {
	dto := FromDiff(service.Diff{
		Added:    []catalog.CatalogKey{{Identifier: "new", Version: 1}},
		Removed:  []catalog.CatalogKey{{Identifier: "old", Version: 2}},
		Modified: []catalog.CatalogKey{{Identifier: "edited", Version: 1}},
	})

	require.Equal(t, []string{"new@1"}, dto.Added)
	require.Equal(t, []string{"old@2"}, dto.Removed)
	require.Equal(t, []string{"edited@1"}, dto.Modified)
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	dto := FromCatalog(sampleCatalog(t))

	require.NoError(t, NewFormatter(&buf).FormatJSON(dto))

	var back CatalogDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, dto, back)
}

func TestFormatCatalogTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf).FormatCatalogTable(FromCatalog(sampleCatalog(t))))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "IDENTIFIER")
	require.Contains(t, lines[0], "VERSION")
	require.Contains(t, lines[0], "DRIVER")
	require.Contains(t, lines[1], "alpha")
	require.Contains(t, lines[3], "jsonl")
}

func TestFormatCatalogTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf).FormatCatalogTable(FromCatalog(catalog.New())))
	require.Equal(t, "catalog is empty\n", buf.String())
}
