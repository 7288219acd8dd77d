package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/predica/internal/models"
	"github.com/desertthunder/predica/internal/services"
	"github.com/desertthunder/predica/internal/shared"
	"golang.org/x/sync/singleflight"
)

// refreshKey is the singleflight key shared by every fetch, forced or not.
const refreshKey = "registry"

// Store abstracts the persisted cache slot so the provider can be tested without SQLite.
// [repositories.CacheRepository] is the production implementation.
type Store interface {
	Load() (models.RegistryCache, error)
	Save(models.RegistryCache) error
}

// Provider resolves registry snapshots for callers of the search engine.
// Safe for concurrent use.
type Provider struct {
	api    services.RegistryAPI
	store  Store
	logger *log.Logger
	now    func() time.Time

	group singleflight.Group

	mu       sync.RWMutex
	snapshot *models.RegistryCache
}

// NewProvider creates a Provider over the given API client and cache store.
// A nil logger gets the shared default.
func NewProvider(api services.RegistryAPI, store Store, logger *log.Logger) *Provider {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Provider{
		api:    api,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Get returns the current registry, fetching only when no valid snapshot exists.
// A failed fetch falls back to a stale persisted snapshot, then to the bundled
// registry; Get fails only if every source is unavailable.
func (p *Provider) Get(ctx context.Context) ([]models.PlaylistRecord, error) {
	if items, ok := p.memoized(); ok {
		return items, nil
	}

	if cached, err := p.store.Load(); err == nil && cached.IsValid(p.now()) {
		p.memoize(cached)
		return cached.Items, nil
	}

	items, err := p.fetch(ctx)
	if err == nil {
		return items, nil
	}
	p.logger.Warn("registry fetch failed, falling back", "error", err)

	if cached, loadErr := p.store.Load(); loadErr == nil {
		p.logger.Info("serving stale registry snapshot", "cached_at", cached.CachedAt)
		p.memoize(cached)
		return cached.Items, nil
	}

	bundled, bundleErr := bundledRegistry()
	if bundleErr != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrRegistryUnavailable, err)
	}
	p.logger.Info("serving bundled registry fallback", "items", len(bundled.Items))
	p.memoize(bundled)
	return bundled.Items, nil
}

// Refresh forces a network refetch, replacing the cached snapshot on success.
// Concurrent refreshes share one request.
func (p *Provider) Refresh(ctx context.Context) ([]models.PlaylistRecord, error) {
	return p.fetch(ctx)
}

// fetch performs the deduplicated network fetch and persists the result.
func (p *Provider) fetch(ctx context.Context) ([]models.PlaylistRecord, error) {
	result, err, _ := p.group.Do(refreshKey, func() (any, error) {
		items, err := p.api.FetchRegistry(ctx)
		if err != nil {
			return nil, err
		}

		snapshot := models.RegistryCache{
			Items:         items,
			CachedAt:      p.now(),
			SchemaVersion: models.CacheSchemaVersion,
		}

		if err := p.store.Save(snapshot); err != nil {
			// A failed write leaves the old slot intact; the fetch still succeeded.
			p.logger.Warn("failed to persist registry snapshot", "error", err)
		}

		p.memoize(snapshot)
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]models.PlaylistRecord), nil
}

func (p *Provider) memoized() ([]models.PlaylistRecord, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.snapshot != nil && p.snapshot.IsValid(p.now()) {
		// Copied so callers can sort or filter without touching the snapshot.
		items := make([]models.PlaylistRecord, len(p.snapshot.Items))
		copy(items, p.snapshot.Items)
		return items, true
	}
	return nil, false
}

func (p *Provider) memoize(snapshot models.RegistryCache) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshot = &snapshot
}
