package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/nyonicai/squirrel-core/internal/config"
)

// resetCLIState clears package-level command state so tests do not
// observe each other's flags and parsed config.
func resetCLIState() {
	cfg = config.Config{}
	cfgFile = ""
	flagFiles = nil
	flagDirs = nil
	flagDebug = false
	flagTrace = false
	viper.Reset()
}

// executeCommand runs the root command with args, capturing both the
// cobra output stream and os.Stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetCLIState()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	execErr := rootCmd.Execute()

	os.Stdout = origStdout
	require.NoError(t, w.Close())
	piped, err := io.ReadAll(r)
	require.NoError(t, err)

	return buf.String() + string(piped), execErr
}

func writeCatalogFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const (
	catalogDS1 = "sources:\n  - key: [ds1, 1]\n    driver: csv\n    driver_kwargs:\n      path: /data/a.csv\n"
	catalogDS2 = "sources:\n  - key: [ds2, 1]\n    driver: jsonl\n"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"list", "show", "merge", "validate", "watch", "init"} {
		require.True(t, names[want], "command %q not registered", want)
	}
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeCatalogFile(t, dir, "a.yaml", catalogDS1)
	b := writeCatalogFile(t, dir, "b.yaml", catalogDS2)

	out, err := executeCommand(t, "list", "-f", a, "-f", b)
	require.NoError(t, err)
	require.Contains(t, out, "IDENTIFIER")
	require.Contains(t, out, "ds1")
	require.Contains(t, out, "ds2")
}

func TestListCommand_DriverFilter(t *testing.T) {
	dir := t.TempDir()
	a := writeCatalogFile(t, dir, "a.yaml", catalogDS1)
	b := writeCatalogFile(t, dir, "b.yaml", catalogDS2)

	out, err := executeCommand(t, "list", "-f", a, "-f", b, "--driver", "csv", "--json=false")
	require.NoError(t, err)
	require.Contains(t, out, "ds1")
	require.NotContains(t, out, "ds2")
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeCatalogFile(t, dir, "a.yaml", catalogDS1)

	out, err := executeCommand(t, "show", "ds1", "-f", a)
	require.NoError(t, err)
	require.Contains(t, out, `"identifier": "ds1"`)
	require.Contains(t, out, `"version": 1`)

	_, err = executeCommand(t, "show", "missing", "-f", a)
	require.Error(t, err)

	_, err = executeCommand(t, "show", "ds1@9", "-f", a)
	require.Error(t, err)
}

func TestMergeCommand_Join(t *testing.T) {
	dir := t.TempDir()
	a := writeCatalogFile(t, dir, "a.yaml", catalogDS1)
	b := writeCatalogFile(t, dir, "b.yaml", catalogDS2)
	out := filepath.Join(dir, "merged.yaml")

	stdout, err := executeCommand(t, "merge", "--strategy", "join", "-o", out, a, b)
	require.NoError(t, err)
	require.Contains(t, stdout, "wrote 2 identifiers")

	merged, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(merged), "[ds1, 1]")
	require.Contains(t, string(merged), "[ds2, 1]")
}

func TestMergeCommand_JoinRejectsOverlap(t *testing.T) {
	dir := t.TempDir()
	a := writeCatalogFile(t, dir, "a.yaml", catalogDS1)
	b := writeCatalogFile(t, dir, "b.yaml", catalogDS1)

	_, err := executeCommand(t, "merge", "--strategy", "join", "-o", filepath.Join(dir, "out.yaml"), a, b)
	require.Error(t, err)
}

func TestMergeCommand_UnionLaterWins(t *testing.T) {
	dir := t.TempDir()
	a := writeCatalogFile(t, dir, "a.yaml", catalogDS1)
	b := writeCatalogFile(t, dir, "b.yaml",
		"sources:\n  - key: [ds1, 1]\n    driver: csv\n    driver_kwargs:\n      path: /data/override.csv\n")
	out := filepath.Join(dir, "merged.yaml")

	_, err := executeCommand(t, "merge", "--strategy", "union", "-o", out, a, b)
	require.NoError(t, err)

	merged, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(merged), "/data/override.csv")
	require.NotContains(t, string(merged), "/data/a.csv")
}

func TestMergeCommand_UnknownStrategy(t *testing.T) {
	dir := t.TempDir()
	a := writeCatalogFile(t, dir, "a.yaml", catalogDS1)
	b := writeCatalogFile(t, dir, "b.yaml", catalogDS2)

	_, err := executeCommand(t, "merge", "--strategy", "bogus", "-o", filepath.Join(dir, "out.yaml"), a, b)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bogus")
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeCatalogFile(t, dir, "a.yaml", catalogDS1)
	b := writeCatalogFile(t, dir, "b.yaml", catalogDS2)

	out, err := executeCommand(t, "validate", a, b)
	require.NoError(t, err)
	require.Contains(t, out, "OK")
}

func TestValidateCommand_Duplicate(t *testing.T) {
	dir := t.TempDir()
	a := writeCatalogFile(t, dir, "a.yaml", catalogDS1)
	b := writeCatalogFile(t, dir, "b.yaml", catalogDS1)

	out, err := executeCommand(t, "validate", a, b)
	require.Error(t, err)
	require.Contains(t, out, "DUPLICATE")
}

func TestValidateCommand_Conflict(t *testing.T) {
	dir := t.TempDir()
	a := writeCatalogFile(t, dir, "a.yaml", catalogDS1)
	b := writeCatalogFile(t, dir, "b.yaml",
		"sources:\n  - key: [ds1, 1]\n    driver: csv\n    driver_kwargs:\n      path: /elsewhere.csv\n")

	out, err := executeCommand(t, "validate", a, b)
	require.Error(t, err)
	require.Contains(t, out, "CONFLICT")
}

func TestInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := executeCommand(t, "init", "-c", target)
	require.NoError(t, err)
	require.Contains(t, out, "wrote")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Contains(t, string(data), "catalog:")

	// Second run refuses to overwrite.
	_, err = executeCommand(t, "init", "-c", target)
	require.Error(t, err)
}

func TestWatchCommand_RequiresDirs(t *testing.T) {
	_, err := executeCommand(t, "watch")
	require.Error(t, err)
	require.Contains(t, err.Error(), "directory")
}

func TestInitConfig_FlagsAugmentConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeCatalogFile(t, dir, "config.yaml", `
catalog:
  files: [from-config.yaml]
cache:
  ttl_seconds: 42
`)

	resetCLIState()
	cfgFile = cfgPath
	flagFiles = []string{"from-flag.yaml"}
	initConfig()

	require.Equal(t, []string{"from-config.yaml", "from-flag.yaml"}, cfg.Catalog.Files)
	require.Equal(t, 42, cfg.Cache.TTLSeconds)
	// Defaults still apply for keys the file omits.
	require.Equal(t, 1000, cfg.Watch.DebounceMs)
	require.True(t, cfg.Catalog.UsePlugins)
}
