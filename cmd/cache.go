package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/predica/internal/models"
	"github.com/desertthunder/predica/internal/repositories"
	"github.com/desertthunder/predica/internal/shared"
	"github.com/desertthunder/predica/internal/tasks"
	"github.com/desertthunder/predica/internal/ui"
	"github.com/urfave/cli/v3"
)

// CacheStatus reports the persisted registry snapshot's age and validity.
func (r *Runner) CacheStatus(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	cache, err := repositories.NewCacheRepository(db).Load()
	if errors.Is(err, shared.ErrCacheMiss) {
		r.writePlain("%s\n", ui.Warn("No cached registry. Run 'predica registry refresh'."))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load cache: %w", err)
	}

	now := time.Now()
	age := now.Sub(cache.CachedAt).Round(time.Minute)

	r.writePlainHeader("Registry Cache")
	r.writePlain("Playlists:      %d\n", len(cache.Items))
	r.writePlain("Cached at:      %s\n", cache.CachedAt.Format(time.RFC3339))
	r.writePlain("Age:            %s\n", age)
	r.writePlain("Schema version: %d\n", cache.SchemaVersion)

	switch {
	case cache.IsValid(now):
		remaining := (models.CacheTTL - now.Sub(cache.CachedAt)).Round(time.Minute)
		r.writePlain("Status:         %s\n", ui.OK(fmt.Sprintf("valid (%s until expiry)", remaining)))
	case cache.SchemaVersion != models.CacheSchemaVersion:
		r.writePlain("Status:         %s\n", ui.Err("schema mismatch, will refetch on next search"))
	default:
		r.writePlain("Status:         %s\n", ui.Warn("expired, will refetch on next search"))
	}
	return nil
}

// CacheClear drops the persisted registry snapshot.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.NewCacheRepository(db).Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	r.writePlain("%s\n", ui.OK("✓ Registry cache cleared"))
	return nil
}

// CacheWarm refreshes the registry and prefetches content items for every playlist.
func (r *Runner) CacheWarm(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	engine := r.engine(db, true)

	progress := make(chan tasks.ProgressUpdate, 10)
	done := make(chan struct{})
	go func() {
		r.watchProgress(progress)
		close(done)
	}()

	result, err := engine.Warm(ctx, progress, tasks.WarmOpts{
		NumWorkers: cmd.Int("workers"),
		RateLimit:  float64(cmd.Int("rate")),
	})
	close(progress)
	<-done
	if err != nil {
		return fmt.Errorf("warm-up failed: %w", err)
	}

	r.writePlain("%s\n", ui.OK(fmt.Sprintf("✓ Warmed %d of %d playlist(s)", result.Prefetched, result.TotalPlaylists)))
	for id, fetchErr := range result.Failures {
		r.writePlain("  %s\n", ui.Err(fmt.Sprintf("%s: %v", id, fetchErr)))
	}
	return nil
}

func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Manage the local registry cache",
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Show cache age, size and validity",
				Action: r.CacheStatus,
			},
			{
				Name:   "clear",
				Usage:  "Drop the cached registry snapshot",
				Action: r.CacheClear,
			},
			{
				Name:  "warm",
				Usage: "Refresh the registry and prefetch playlist content",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent prefetch workers",
						Value: 4,
					},
					&cli.IntFlag{
						Name:  "rate",
						Usage: "Request rate limit (requests per second)",
						Value: 5,
					},
				},
				Action: r.CacheWarm,
			},
		},
	}
}
