package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nyonicai/squirrel-core/internal/fsspec"
)

func writeMemFile(t *testing.T, url, content string) {
	t.Helper()
	fs, err := fsspec.ForURL(url)
	require.NoError(t, err)
	require.NoError(t, fs.WriteFile(url, []byte(content)))
}

func TestFromFiles(t *testing.T) {
	fsspec.ResetMem()
	writeMemFile(t, "mem://catalogs/a.yaml", `
sources:
  - key: [ds1, 1]
    driver: csv
    driver_kwargs:
      path: /data/a.csv
`)
	writeMemFile(t, "mem://catalogs/b.yaml", `
sources:
  - key: [ds2, 1]
    driver: jsonl
    driver_kwargs:
      path: /data/b.jsonl
`)

	cat, err := FromFiles([]string{"mem://catalogs/a.yaml", "mem://catalogs/b.yaml"})
	require.NoError(t, err)
	require.Equal(t, []string{"ds1", "ds2"}, cat.Keys())
}

func TestFromFiles_DuplicateAcrossFiles(t *testing.T) {
	fsspec.ResetMem()
	writeMemFile(t, "mem://catalogs/a.yaml", "sources:\n  - key: [ds1, 1]\n    driver: csv\n")
	writeMemFile(t, "mem://catalogs/b.yaml", "sources:\n  - key: [ds1, 1]\n    driver: csv\n")

	_, err := FromFiles([]string{"mem://catalogs/a.yaml", "mem://catalogs/b.yaml"})
	require.ErrorIs(t, err, ErrNotDisjoint)
	require.Contains(t, err.Error(), "b.yaml")
}

func TestFromFiles_MissingFile(t *testing.T) {
	fsspec.ResetMem()
	_, err := FromFiles([]string{"mem://catalogs/missing.yaml"})
	require.Error(t, err)
}

func TestFromFiles_MalformedFile(t *testing.T) {
	fsspec.ResetMem()
	writeMemFile(t, "mem://catalogs/bad.yaml", "sources:\n  - key: [ds1, 0]\n    driver: csv\n")

	_, err := FromFiles([]string{"mem://catalogs/bad.yaml"})
	require.ErrorIs(t, err, ErrInvalidVersion)
	require.Contains(t, err.Error(), "bad.yaml")
}

func TestFromDirs(t *testing.T) {
	fsspec.ResetMem()
	writeMemFile(t, "mem://catalogs/a.yaml", "sources:\n  - key: [ds1, 1]\n    driver: csv\n")
	writeMemFile(t, "mem://catalogs/b.yaml", "sources:\n  - key: [ds2, 1]\n    driver: csv\n")
	writeMemFile(t, "mem://catalogs/notes.txt", "not a catalog")

	cat, err := FromDirs([]string{"mem://catalogs"})
	require.NoError(t, err)
	require.Equal(t, []string{"ds1", "ds2"}, cat.Keys())
}

type fakeFragments struct {
	fragments [][]KeyedSource
}

func (f fakeFragments) Fragments() [][]KeyedSource { return f.fragments }

func TestFromPlugins(t *testing.T) {
	provider := fakeFragments{fragments: [][]KeyedSource{
		{
			{Key: CatalogKey{"ds1", 1}, Source: testSource("csv", "/first")},
			{Key: CatalogKey{"ds2", 1}, Source: testSource("jsonl", "/b")},
		},
		{
			// Same pair again: assignment semantics, last registration wins.
			{Key: CatalogKey{"ds1", 1}, Source: testSource("csv", "/second")},
		},
	}}

	cat, err := FromPlugins(provider)
	require.NoError(t, err)
	require.Equal(t, []string{"ds1", "ds2"}, cat.Keys())

	cs, _ := cat.Get("ds1")
	require.Equal(t, "/second", cs.DriverKwargs["path"])
}

func TestFromPlugins_InvalidVersion(t *testing.T) {
	provider := fakeFragments{fragments: [][]KeyedSource{
		{{Key: CatalogKey{"ds1", 0}, Source: testSource("csv", "/a")}},
	}}

	_, err := FromPlugins(provider)
	require.ErrorIs(t, err, ErrInvalidVersion)
}

func TestToFile(t *testing.T) {
	fsspec.ResetMem()

	cat := New()
	require.NoError(t, cat.At("ds1").Set(1, testSource("csv", "/data/a.csv")))
	require.NoError(t, cat.ToFile("mem://out/catalog.yaml"))

	back, err := FromFiles([]string{"mem://out/catalog.yaml"})
	require.NoError(t, err)
	require.True(t, cat.Equal(back))
}
