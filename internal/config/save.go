package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultConfigTemplate is written on first run so users have a
// commented starting point instead of an empty file.
const defaultConfigTemplate = `# squirrel configuration
catalog:
  # Individual catalog documents, joined pairwise (must be disjoint).
  files: []
  # Directories scanned for *.yaml catalog documents.
  dirs: []
  # Merge plugin-contributed sources underneath file catalogs.
  use_plugins: true

watch:
  debounce_ms: 1000

cache:
  disabled: false
  ttl_seconds: 300

tracing:
  enabled: false
  exporter: file
  sample_rate: 1.0
`

// WriteDefaultConfig writes the commented default config to path,
// creating parent directories. Refuses to overwrite an existing file.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
