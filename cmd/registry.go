package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/desertthunder/predica/internal/models"
	"github.com/desertthunder/predica/internal/ui"
	"github.com/urfave/cli/v3"
)

// RegistryList prints every playlist in the current registry snapshot.
func (r *Runner) RegistryList(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	items, err := r.provider(db).Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if kind := cmd.String("kind"); kind != "" {
		filtered := make([]models.PlaylistRecord, 0, len(items))
		for _, item := range items {
			if string(item.Kind) == kind {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	if cmd.Bool("json") {
		return r.writeJSON(items, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Playlist Registry")
	for _, item := range items {
		r.writePlain("%-24s %-12s %s\n", item.ID, item.Kind, item.Title)
	}
	r.writePlainln("%s", ui.OK(fmt.Sprintf("✓ %d playlist(s)", len(items))))
	return nil
}

// RegistryRefresh forces a network fetch and persists the fresh snapshot.
func (r *Runner) RegistryRefresh(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	r.logger.Info("refreshing registry", "base_url", r.config.API.BaseURL)

	items, err := r.provider(db).Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	byKind := map[models.Kind]int{}
	for _, item := range items {
		byKind[item.Kind]++
	}

	r.writePlain("%s\n", ui.OK(fmt.Sprintf("✓ Registry refreshed: %d playlist(s)", len(items))))
	for _, kind := range []models.Kind{models.KindYearBucket, models.KindEvent, models.KindCategory, models.KindSeries, models.KindPodcast} {
		if n := byKind[kind]; n > 0 {
			r.writePlain("  %-12s %d\n", kind, n)
		}
	}
	return nil
}

func registryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "registry",
		Usage: "Inspect and refresh the playlist registry",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List playlists in the current registry snapshot",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "kind",
						Usage: "Filter by kind (year_bucket, event, category, series, podcast)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output as JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				},
				Action: r.RegistryList,
			},
			{
				Name:   "refresh",
				Usage:  "Force-fetch the registry from the backend",
				Action: r.RegistryRefresh,
			},
		},
	}
}
