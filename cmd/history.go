package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/predica/internal/repositories"
	"github.com/desertthunder/predica/internal/ui"
	"github.com/urfave/cli/v3"
)

// History lists recent searches, newest first.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := repositories.NewSearchLogRepository(db).Recent(cmd.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to load search history: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Search History")

	if len(entries) == 0 {
		r.writePlain("%s\n", ui.Help("No searches recorded yet."))
		return nil
	}

	for _, entry := range entries {
		top := entry.TopPlaylistID
		if top == "" {
			top = "-"
		}
		r.writePlain("%s  %-24q %3d result(s)  top: %s\n",
			entry.ExecutedAt.Format(time.DateTime), entry.Query, entry.ResultCount, top)
	}
	return nil
}

func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recent searches",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of entries to show",
				Value:   20,
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
		Action: r.History,
	}
}
