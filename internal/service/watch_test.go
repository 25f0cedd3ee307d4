package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nyonicai/squirrel-core/internal/catalog"
	"github.com/nyonicai/squirrel-core/internal/config"
	"github.com/nyonicai/squirrel-core/internal/pubsub"
)

func TestService_Watch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"),
		[]byte("sources:\n  - key: [ds1, 1]\n    driver: csv\n"), 0o644))

	cfg := config.Defaults()
	cfg.Catalog.Dirs = []string{dir}
	cfg.Watch.DebounceMs = 50
	cfg.Cache.Disabled = true

	svc := New(cfg, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	events, err := svc.Watch(ctx)
	require.NoError(t, err)

	// Watch performs the initial load before watching.
	require.NotNil(t, svc.Current())
	require.Equal(t, []string{"ds1"}, svc.Current().Keys())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"),
		[]byte("sources:\n  - key: [ds2, 1]\n    driver: jsonl\n"), 0o644))

	var ev pubsub.Event[ReloadSummary]
	select {
	case ev = <-events:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event after a catalog file change")
	}

	require.Equal(t, pubsub.ReloadedEvent, ev.Type)
	require.Equal(t, []string{"ds1", "ds2"}, ev.Payload.Catalog.Keys())
	require.Equal(t, []catalog.CatalogKey{{Identifier: "ds2", Version: 1}}, ev.Payload.Diff.Added)
	require.Empty(t, ev.Payload.Diff.Removed)

	cancel()
	require.Eventually(t, func() bool {
		_, open := <-events
		return !open
	}, 5*time.Second, 20*time.Millisecond)
}

func TestService_WatchInitialLoadFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"),
		[]byte("sources:\n  - key: [ds1, 0]\n    driver: csv\n"), 0o644))

	cfg := config.Defaults()
	cfg.Catalog.Dirs = []string{dir}
	cfg.Cache.Disabled = true

	_, err := New(cfg, nil).Watch(context.Background())
	require.ErrorIs(t, err, catalog.ErrInvalidVersion)
}
