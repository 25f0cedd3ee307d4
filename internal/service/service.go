// Package service is the application layer over the catalog core: it
// composes plugin-contributed defaults with file catalogs per the
// configuration, caches decoded documents, and rebuilds on watch
// events. Each load produces a brand-new Catalog; the service never
// mutates a catalog it has handed out.
package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/nyonicai/squirrel-core/internal/cachemanager"
	"github.com/nyonicai/squirrel-core/internal/catalog"
	"github.com/nyonicai/squirrel-core/internal/config"
	"github.com/nyonicai/squirrel-core/internal/fsspec"
	"github.com/nyonicai/squirrel-core/internal/log"
	"github.com/nyonicai/squirrel-core/internal/tracing"
)

// Service loads and composes catalogs according to configuration.
type Service struct {
	cfg      config.Config
	provider catalog.FragmentProvider
	tracer   trace.Tracer
	decode   *cachemanager.ReadThrough[*catalog.Catalog, []byte]
	ttl      time.Duration

	mu      sync.Mutex
	current *catalog.Catalog
}

// Option customizes a Service.
type Option func(*Service)

// WithTracer attaches a tracer; without it spans are no-ops.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New creates a catalog service. provider supplies plugin-contributed
// fragments; pass nil to compose from files alone.
func New(cfg config.Config, provider catalog.FragmentProvider, opts ...Option) *Service {
	s := &Service{
		cfg:      cfg,
		provider: provider,
		tracer:   tracenoop.NewTracerProvider().Tracer("noop"),
		ttl:      time.Duration(cfg.Cache.TTLSeconds) * time.Second,
	}

	cache := cachemanager.NewInMemory[*catalog.Catalog](
		"catalog-decode", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	s.decode = cachemanager.NewReadThrough(cache,
		func(ctx context.Context, data []byte) (*catalog.Catalog, error) {
			return catalog.Decode(data)
		},
		cfg.Cache.Disabled,
	)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load builds the composed catalog: plugin fragments first (merged by
// assignment), then directory and file catalogs joined pairwise and
// unioned on top, so user files override plugin defaults.
func (s *Service) Load(ctx context.Context) (*catalog.Catalog, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanLoad, trace.WithAttributes(
		attribute.Int(tracing.AttrCatalogFiles, len(s.cfg.Catalog.Files)),
		attribute.Int(tracing.AttrCatalogDirs, len(s.cfg.Catalog.Dirs)),
	))
	defer span.End()

	cat, err := s.load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int(tracing.AttrCatalogLen, cat.Len()))

	s.mu.Lock()
	s.current = cat
	s.mu.Unlock()

	log.Info(log.CatCatalog, "catalog loaded", "identifiers", cat.Len())
	return cat, nil
}

// Current returns the catalog from the most recent Load, or nil before
// the first one.
func (s *Service) Current() *catalog.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Service) load(ctx context.Context) (*catalog.Catalog, error) {
	base := catalog.New()

	if s.cfg.Catalog.UsePlugins && s.provider != nil {
		_, span := s.tracer.Start(ctx, tracing.SpanPlugins)
		fromPlugins, err := catalog.FromPlugins(s.provider)
		span.End()
		if err != nil {
			return nil, err
		}
		base = fromPlugins
	}

	files, err := s.collectFiles()
	if err != nil {
		return nil, err
	}

	fromFiles := catalog.New()
	for _, path := range files {
		next, err := s.loadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		fromFiles, err = fromFiles.Join(next)
		if err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", path, err)
		}
	}

	// Files win pairwise over plugin defaults.
	return base.Union(fromFiles), nil
}

// collectFiles expands configured dirs into .yaml files and appends the
// explicitly configured files.
func (s *Service) collectFiles() ([]string, error) {
	var files []string
	for _, dir := range s.cfg.Catalog.Dirs {
		fs, err := fsspec.ForURL(dir)
		if err != nil {
			return nil, err
		}
		found, err := fs.List(dir, catalog.CatalogExt)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return append(files, s.cfg.Catalog.Files...), nil
}

// loadFile reads and decodes one catalog document through the decode
// cache. The cache key fingerprints the content, so an edited file is a
// miss and a fresh decode.
func (s *Service) loadFile(ctx context.Context, path string) (*catalog.Catalog, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanDecodeFile, trace.WithAttributes(
		attribute.String(tracing.AttrFilePath, path),
	))
	defer span.End()

	fs, err := fsspec.ForURL(path)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cat, err := s.decode.Get(ctx, cacheKey(path, data), data, s.ttl)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return cat, nil
}

func cacheKey(path string, data []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(data)
	return fmt.Sprintf("%s#%x", path, h.Sum64())
}
