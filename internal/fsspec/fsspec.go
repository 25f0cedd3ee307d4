// Package fsspec resolves URLs and paths to filesystems. It is the
// filesystem collaborator of the catalog: everything the catalog reads
// or writes goes through an afero filesystem obtained here, so tests
// and tooling can swap in an in-memory backend.
//
// Supported schemes:
//   - bare paths and file:// — the OS filesystem
//   - mem:// — a process-shared in-memory filesystem
package fsspec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

var (
	// ErrUnsupportedScheme is returned for URL schemes fsspec cannot serve.
	ErrUnsupportedScheme = errors.New("unsupported url scheme")
)

// FS is a filesystem bound to the location a URL resolved to. Paths
// passed to its methods keep their original scheme prefix, so values
// returned by List feed straight back into Open.
type FS struct {
	backend afero.Fs
	scheme  string
}

// memFS is shared by every mem:// resolution so that writes are visible
// across ForURL calls within the process.
var (
	memFS     afero.Fs
	memFSOnce sync.Once
	memFSMu   sync.Mutex
)

func sharedMemFS() afero.Fs {
	memFSOnce.Do(func() {
		memFS = afero.NewMemMapFs()
	})
	return memFS
}

// ResetMem discards the shared in-memory filesystem. Test helper.
func ResetMem() {
	memFSMu.Lock()
	defer memFSMu.Unlock()
	memFSOnce = sync.Once{}
	memFS = nil
}

// ForURL resolves a URL or bare path to a filesystem.
func ForURL(rawurl string) (*FS, error) {
	scheme, _, found := strings.Cut(rawurl, "://")
	if !found {
		return &FS{backend: afero.NewOsFs(), scheme: ""}, nil
	}

	switch scheme {
	case "file":
		return &FS{backend: afero.NewOsFs(), scheme: "file"}, nil
	case "mem":
		memFSMu.Lock()
		defer memFSMu.Unlock()
		return &FS{backend: sharedMemFS(), scheme: "mem"}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

// Open opens the file at the URL or path for reading.
func (f *FS) Open(rawurl string) (io.ReadCloser, error) {
	file, err := f.backend.Open(f.strip(rawurl))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", rawurl, err)
	}
	return file, nil
}

// ReadFile reads the whole file at the URL or path.
func (f *FS) ReadFile(rawurl string) ([]byte, error) {
	data, err := afero.ReadFile(f.backend, f.strip(rawurl))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rawurl, err)
	}
	return data, nil
}

// WriteFile writes data to the URL or path, creating parent directories
// as needed.
func (f *FS) WriteFile(rawurl string, data []byte) error {
	p := f.strip(rawurl)
	if dir := path.Dir(p); dir != "." && dir != "/" {
		if err := f.backend.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", rawurl, err)
		}
	}
	if err := afero.WriteFile(f.backend, p, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rawurl, err)
	}
	return nil
}

// List returns the files directly under the directory URL whose names
// end in ext (e.g. ".yaml"), sorted. Returned paths carry the same
// scheme as the input, ready for Open.
func (f *FS) List(dirURL, ext string) ([]string, error) {
	dir := f.strip(dirURL)
	infos, err := afero.ReadDir(f.backend, dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dirURL, err)
	}

	var files []string
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ext) {
			continue
		}
		files = append(files, f.join(dir, info.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Exists reports whether the URL or path names an existing file.
func (f *FS) Exists(rawurl string) bool {
	_, err := f.backend.Stat(f.strip(rawurl))
	return !os.IsNotExist(err) && err == nil
}

// strip removes the scheme prefix, leaving a backend path.
func (f *FS) strip(rawurl string) string {
	if f.scheme == "" {
		return rawurl
	}
	return strings.TrimPrefix(rawurl, f.scheme+"://")
}

// join rebuilds a path under the FS's scheme.
func (f *FS) join(dir, name string) string {
	joined := filepath.ToSlash(filepath.Join(dir, name))
	if f.scheme == "" {
		return filepath.Join(dir, name)
	}
	return f.scheme + "://" + joined
}
