package tasks

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/predica/internal/models"
	"github.com/desertthunder/predica/internal/search"
	"github.com/desertthunder/predica/internal/services"
	"github.com/desertthunder/predica/internal/shared"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// RegistrySource supplies registry snapshots. [registry.Provider] is the
// production implementation.
type RegistrySource interface {
	Get(ctx context.Context) ([]models.PlaylistRecord, error)
	Refresh(ctx context.Context) ([]models.PlaylistRecord, error)
}

// SearchRecorder appends executed searches to the history log.
// [repositories.SearchLogRepository] satisfies this via a thin adapter;
// a nil recorder disables history.
type SearchRecorder interface {
	RecordSearch(query string, resultCount int, topPlaylistID string) error
}

// SearchRunResult contains all data from one end-to-end search.
type SearchRunResult struct {
	Query    string                          // Raw query as issued
	Ranked   []models.ScoredPlaylist         // Ranked records with scores attached
	Result   models.SearchResult             // Score-free result handed to display layers
	Items    map[string][]models.ContentItem // Content items keyed by youtube playlist ID
	Failures map[string]error                // Content fetches that failed, keyed the same way
}

// WarmOpts configures a registry warm-up run.
type WarmOpts struct {
	NumWorkers int     // Concurrent workers (default: 4, capped at 8)
	RateLimit  float64 // Requests per second against the content API (default: 5)
}

// WarmResult summarizes a warm-up run.
type WarmResult struct {
	TotalPlaylists int
	Prefetched     int
	ItemCounts     map[string]int // Items per youtube playlist ID
	Failures       map[string]error
}

// SearchEngine orchestrates registry search: resolve registry, rank, fetch content.
type SearchEngine struct {
	registry RegistrySource
	content  services.ContentAPI
	history  SearchRecorder
	logger   *log.Logger
}

// NewSearchEngine creates a SearchEngine. The content API and history recorder
// may be nil, disabling content fetches and history respectively.
func NewSearchEngine(registry RegistrySource, content services.ContentAPI, history SearchRecorder, logger *log.Logger) *SearchEngine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &SearchEngine{
		registry: registry,
		content:  content,
		history:  history,
		logger:   logger,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *SearchEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Run resolves a query end to end: registry, ranking, then content items for each
// ranked playlist. Content fetch failures are partial results, not run failures.
func (e *SearchEngine) Run(ctx context.Context, progress chan<- ProgressUpdate, query string) (*SearchRunResult, error) {
	if e.registry == nil {
		return nil, fmt.Errorf("%w: registry source not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, loadRegistryUpdate())

	records, err := e.registry.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrRegistryUnavailable, err)
	}

	e.sendProgress(progress, rankPlaylistsUpdate(len(records)))

	ranked := search.Rank(query, records)
	result := models.SearchResult{Playlists: make([]models.PlaylistRecord, len(ranked))}
	for i, sp := range ranked {
		result.Playlists[i] = sp.Playlist
	}

	run := &SearchRunResult{
		Query:    query,
		Ranked:   ranked,
		Result:   result,
		Items:    make(map[string][]models.ContentItem),
		Failures: make(map[string]error),
	}

	if e.history != nil {
		top := ""
		if len(ranked) > 0 {
			top = ranked[0].Playlist.ID
		}
		if err := e.history.RecordSearch(query, len(ranked), top); err != nil {
			e.logger.Warn("failed to record search history", "error", err)
		}
	}

	if e.content == nil {
		return run, nil
	}

	for i, playlistID := range result.PlaylistIDs() {
		e.sendProgress(progress, fetchItemsUpdate(i+1, len(ranked), playlistID))

		items, err := e.content.GetPlaylistItems(ctx, playlistID)
		if err != nil {
			e.logger.Warn("content fetch failed", "playlist_id", playlistID, "error", err)
			run.Failures[playlistID] = err
			continue
		}
		run.Items[playlistID] = items
	}

	return run, nil
}

// Warm refreshes the registry and prefetches content listings for every playlist,
// bounded by a worker pool and a rate limiter.
func (e *SearchEngine) Warm(ctx context.Context, progress chan<- ProgressUpdate, opts WarmOpts) (*WarmResult, error) {
	if e.registry == nil {
		return nil, fmt.Errorf("%w: registry source not initialized", shared.ErrServiceUnavailable)
	}
	if e.content == nil {
		return nil, fmt.Errorf("%w: content API not initialized", shared.ErrServiceUnavailable)
	}

	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 8 {
		opts.NumWorkers = 8
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	e.sendProgress(progress, refreshRegistryUpdate())

	records, err := e.registry.Refresh(ctx)
	if err != nil {
		e.logger.Warn("refresh failed, warming from cached registry", "error", err)
		if records, err = e.registry.Get(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrRegistryUnavailable, err)
		}
	}

	result := &WarmResult{
		TotalPlaylists: len(records),
		ItemCounts:     make(map[string]int),
		Failures:       make(map[string]error),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opts.NumWorkers)

	for i, record := range records {
		step, playlistID := i+1, record.YouTubePlaylistID
		if playlistID == "" {
			continue
		}

		group.Go(func() error {
			if err := limiter.Wait(groupCtx); err != nil {
				return err
			}

			e.sendProgress(progress, warmPlaylistsUpdate(step, len(records), playlistID))

			items, err := e.content.GetPlaylistItems(groupCtx, playlistID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failures[playlistID] = err
				return nil // partial failure, keep warming
			}
			result.ItemCounts[playlistID] = len(items)
			result.Prefetched++
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return result, fmt.Errorf("warm-up interrupted: %w", err)
	}

	return result, nil
}
