package fsspec

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "bare path", url: "/tmp/catalog.yaml"},
		{name: "file scheme", url: "file:///tmp/catalog.yaml"},
		{name: "mem scheme", url: "mem://catalogs/a.yaml"},
		{name: "unknown scheme", url: "s3://bucket/a.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := ForURL(tt.url)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedScheme)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, fs)
		})
	}
}

func TestMemFS_ReadWrite(t *testing.T) {
	ResetMem()
	fs, err := ForURL("mem://data/a.txt")
	require.NoError(t, err)

	require.NoError(t, fs.WriteFile("mem://data/a.txt", []byte("hello")))
	require.True(t, fs.Exists("mem://data/a.txt"))
	require.False(t, fs.Exists("mem://data/missing.txt"))

	data, err := fs.ReadFile("mem://data/a.txt")
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	rc, err := fs.Open("mem://data/a.txt")
	require.NoError(t, err)
	t.Cleanup(func() { rc.Close() })
	streamed, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "hello", string(streamed))
}

func TestMemFS_SharedAcrossResolutions(t *testing.T) {
	ResetMem()
	writer, err := ForURL("mem://shared/x.txt")
	require.NoError(t, err)
	require.NoError(t, writer.WriteFile("mem://shared/x.txt", []byte("visible")))

	reader, err := ForURL("mem://shared/x.txt")
	require.NoError(t, err)
	data, err := reader.ReadFile("mem://shared/x.txt")
	require.NoError(t, err)
	require.Equal(t, "visible", string(data))
}

func TestList_FiltersByExtensionAndSorts(t *testing.T) {
	ResetMem()
	fs, err := ForURL("mem://catalogs")
	require.NoError(t, err)

	require.NoError(t, fs.WriteFile("mem://catalogs/b.yaml", []byte("b")))
	require.NoError(t, fs.WriteFile("mem://catalogs/a.yaml", []byte("a")))
	require.NoError(t, fs.WriteFile("mem://catalogs/notes.txt", []byte("n")))
	require.NoError(t, fs.WriteFile("mem://catalogs/sub/c.yaml", []byte("c")))

	files, err := fs.List("mem://catalogs", ".yaml")
	require.NoError(t, err)
	// Direct children only, scheme preserved, sorted.
	require.Equal(t, []string{"mem://catalogs/a.yaml", "mem://catalogs/b.yaml"}, files)
}

func TestList_MissingDir(t *testing.T) {
	ResetMem()
	fs, err := ForURL("mem://nowhere")
	require.NoError(t, err)
	_, err = fs.List("mem://nowhere", ".yaml")
	require.Error(t, err)
}

func TestOsFS_ReadWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "out.yaml")

	fs, err := ForURL(target)
	require.NoError(t, err)
	require.NoError(t, fs.WriteFile(target, []byte("content")))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "content", string(data))

	files, err := fs.List(filepath.Join(dir, "nested"), ".yaml")
	require.NoError(t, err)
	require.Equal(t, []string{target}, files)
}
