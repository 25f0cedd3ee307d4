package service

import (
	"context"
	"time"

	"github.com/nyonicai/squirrel-core/internal/catalog"
	"github.com/nyonicai/squirrel-core/internal/log"
	"github.com/nyonicai/squirrel-core/internal/pubsub"
	"github.com/nyonicai/squirrel-core/internal/tracing"
	"github.com/nyonicai/squirrel-core/internal/watcher"
)

// ReloadSummary is the payload of a reload event.
type ReloadSummary struct {
	// Catalog is the freshly built catalog.
	Catalog *catalog.Catalog

	// Diff lists the pairs that changed relative to the previous build.
	Diff Diff
}

// Watch starts watching the configured catalog directories and rebuilds
// the catalog on changes, publishing one event per settled change burst.
// The subscription and the watcher stop when ctx is cancelled. Requires
// at least one configured directory; explicit files are re-read on every
// rebuild regardless of where they live.
func (s *Service) Watch(ctx context.Context) (<-chan pubsub.Event[ReloadSummary], error) {
	if _, err := s.Load(ctx); err != nil {
		return nil, err
	}

	w, err := watcher.New(watcher.Config{
		Dirs:        s.cfg.Catalog.Dirs,
		Ext:         catalog.CatalogExt,
		DebounceDur: time.Duration(s.cfg.Watch.DebounceMs) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return nil, err
	}

	broker := pubsub.NewBroker[ReloadSummary]()
	events := broker.Subscribe(ctx)

	go func() {
		defer func() {
			_ = w.Stop()
			broker.Close()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				s.reload(ctx, broker)
			}
		}
	}()

	return events, nil
}

// reload rebuilds the catalog and publishes the resulting diff.
func (s *Service) reload(ctx context.Context, broker *pubsub.Broker[ReloadSummary]) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanReload)
	defer span.End()

	before := s.Current()
	after, err := s.Load(ctx)
	if err != nil {
		// Load leaves the previous catalog in place on failure. Watchers
		// can observe half-written files; the next settle retries.
		span.RecordError(err)
		log.ErrorErr(log.CatWatch, "catalog reload failed, keeping previous", err)
		return
	}

	diff := DiffCatalogs(before, after)
	if diff.Empty() {
		log.Debug(log.CatWatch, "reload produced no changes")
		return
	}

	log.Info(log.CatWatch, "catalog reloaded",
		"added", len(diff.Added), "removed", len(diff.Removed), "modified", len(diff.Modified))
	broker.Publish(pubsub.ReloadedEvent, ReloadSummary{Catalog: after, Diff: diff})
}
