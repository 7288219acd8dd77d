package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/predica/internal/shared"
	"github.com/desertthunder/predica/internal/tasks"
	"github.com/desertthunder/predica/internal/ui"
	"github.com/urfave/cli/v3"
)

// Search ranks the registry against the query and prints the results.
//
// The registry resolves from the local cache when fresh, falling back to the
// network, a stale cache and finally the bundled snapshot.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	engine := r.engine(db, cmd.Bool("items"))

	progress := make(chan tasks.ProgressUpdate, 10)
	done := make(chan struct{})
	go func() {
		r.watchProgress(progress)
		close(done)
	}()

	run, err := engine.Run(ctx, progress, query)
	close(progress)
	<-done
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	ranked := run.Ranked
	if limit := cmd.Int("limit"); limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	if cmd.Bool("json") {
		return r.writeJSON(ranked, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Results for %q", query))

	if len(ranked) == 0 {
		r.writePlain("%s\n", ui.Warn("No playlists matched."))
		r.writePlain("%s\n", ui.Help("Try a year (2025), a short code (yc25) or a series name."))
		return nil
	}

	for i, sp := range ranked {
		title := sp.Playlist.Title
		if y, ok := sp.Playlist.YearValue(); ok {
			title = fmt.Sprintf("%s (%d)", title, y)
		}
		r.writePlain("%2d. %s  [%s, score %d]\n", i+1, title, sp.Playlist.Kind, sp.Score)
		r.writePlain("    %s\n", ui.Help(sp.Playlist.YouTubePlaylistID))

		if items, ok := run.Items[sp.Playlist.YouTubePlaylistID]; ok {
			for _, item := range items {
				r.writePlain("      - %s\n", item.Title)
			}
		}
		if fetchErr, ok := run.Failures[sp.Playlist.YouTubePlaylistID]; ok {
			r.writePlain("      %s\n", ui.Err(fmt.Sprintf("items unavailable: %v", fetchErr)))
		}
	}

	r.writePlainln("%s", ui.OK(fmt.Sprintf("✓ %d match(es)", len(run.Ranked))))
	return nil
}

func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search playlists by title, alias, synonym or year",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output results as JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
			&cli.BoolFlag{
				Name:  "items",
				Usage: "Fetch content items for each matched playlist",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of results to display",
			},
		},
		Action: r.Search,
	}
}
