package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/predica/internal/formatter"
	"github.com/desertthunder/predica/internal/search"
	"github.com/desertthunder/predica/internal/shared"
	"github.com/desertthunder/predica/internal/ui"
	"github.com/urfave/cli/v3"
)

// Export ranks the registry against the query and writes the results to a file.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	query := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	items, err := r.provider(db).Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	ranked := search.Rank(query, items)

	path, err := formatter.WriteExport(query, ranked, cmd.String("format"), cmd.String("output"))
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.writePlain("%s\n", ui.OK(fmt.Sprintf("✓ Exported %d result(s) to %s", len(ranked), path)))
	return nil
}

func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export search results to a file",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format: csv, markdown, txt, json",
				Value:   "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path",
			},
		},
		Action: r.Export,
	}
}
