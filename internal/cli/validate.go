package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbar/pkg/cache"
	"github.com/matzehuels/stackbar/pkg/chart"
	"github.com/matzehuels/stackbar/pkg/chart/render"
	"github.com/matzehuels/stackbar/pkg/errors"
	"github.com/matzehuels/stackbar/pkg/pipeline"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <snapshot>...",
		Short: "Decode and check snapshots",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

// runValidate checks every path and reports all failures, not just the first.
func runValidate(ctx context.Context, w io.Writer, paths []string) error {
	logger := loggerFromContext(ctx)
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)

	var rows [][]string
	failed := 0
	for _, path := range paths {
		ds, _, err := runner.Load(ctx, path)
		if err != nil {
			failed++
			logger.Debug("invalid snapshot", "path", path, "code", errors.GetCode(err))
			printError(w, "%s: %s", path, errors.UserMessage(err))
			continue
		}
		rows = append(rows, summaryRow(path, ds))
	}

	if len(rows) > 0 {
		printTable(w, []string{"Snapshot", "Bars", "Segments", "Start", "Max total"}, rows)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d snapshots invalid", failed, len(paths))
	}
	printSuccess(w, "%d snapshots valid", len(paths))
	return nil
}

func summaryRow(path string, ds chart.Dataset) []string {
	maxTotal := 0.0
	for _, t := range ds.Totals() {
		maxTotal = max(maxTotal, t)
	}
	return []string{
		path,
		strconv.Itoa(len(ds.Bars)),
		strconv.Itoa(len(ds.Legend)),
		strconv.Itoa(ds.Config.StartIndex),
		render.PlainNumber(maxTotal),
	}
}
