package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"reelscore/internal/pipeline"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var noCharts bool
	var noWorkbook bool
	var noTune bool

	cmd := &cobra.Command{
		Use:   "analyze [data-file]",
		Short: "Run the full analysis pipeline over a movie CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				cfg.Paths.DataFile = strings.TrimSpace(args[0])
			}
			if noCharts {
				cfg.Report.Charts = false
			}
			if noWorkbook {
				cfg.Report.Workbook = false
			}
			if noTune {
				cfg.Tuning.Enabled = false
			}

			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "reelscore.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire analysis lock: %w", err)
			}
			if !locked {
				return errors.New("another reelscore analysis is already running")
			}
			defer lock.Unlock()

			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runner := pipeline.New(cfg, store, logger)
			state, err := runner.Execute(cmd.Context(), cfg.Paths.DataFile)
			if err != nil {
				if state != nil && state.Run != nil {
					return fmt.Errorf("run %s ended with status %s: %w", state.Run.ID, state.Run.Status, err)
				}
				return err
			}

			printAnalysis(cmd, state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCharts, "no-charts", false, "Skip chart rendering")
	cmd.Flags().BoolVar(&noWorkbook, "no-workbook", false, "Skip Excel workbook export")
	cmd.Flags().BoolVar(&noTune, "no-tune", false, "Skip the ensemble hyperparameter grid search")

	return cmd
}

func printAnalysis(cmd *cobra.Command, state *pipeline.State) {
	out := cmd.OutOrStdout()

	printSection(out, "Cleaning")
	if s := state.Summary; s != nil {
		fmt.Fprintln(out, renderTable(
			[]string{"Metric", "Value"},
			[][]string{
				{"Rows loaded", formatCount(s.RowsIn)},
				{"Rows after cleaning", formatCount(s.RowsOut)},
				{"Dropped (missing rating)", formatCount(s.DroppedMissingRating)},
				{"Dropped (duplicates)", formatCount(s.DroppedDuplicates)},
				{"Imputed years", formatCount(s.ImputedYears)},
				{"Imputed durations", formatCount(s.ImputedDurations)},
				{"Imputed vote counts", formatCount(s.ImputedVotes)},
			},
			1,
		))
	}

	printSection(out, "Model comparison")
	rows := make([][]string, 0, len(state.Results))
	for i, r := range state.Results {
		tuned := ""
		if r.Tuned {
			tuned = "yes"
		}
		rows = append(rows, []string{
			formatCount(i + 1), r.Model,
			formatFloat(r.TrainR2), formatFloat(r.TestR2),
			formatFloat(r.TestRMSE), formatFloat(r.TestMAE),
			tuned,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Rank", "Model", "Train R2", "Test R2", "Test RMSE", "Test MAE", "Tuned"},
		rows,
		0, 2, 3, 4, 5,
	))

	if len(state.Importance) > 0 {
		printSection(out, "Feature importance")
		limit := len(state.Importance)
		if limit > 10 {
			limit = 10
		}
		impRows := make([][]string, 0, limit)
		for _, imp := range state.Importance[:limit] {
			impRows = append(impRows, []string{imp.Feature, formatFloat(imp.Score)})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Feature", "Importance"},
			impRows,
			1,
		))
	}

	if len(state.Insights) > 0 {
		printSection(out, "Insights")
		for _, insight := range state.Insights {
			fmt.Fprintf(out, "  %s: %s\n", insight.Title, insight.Text)
		}
		fmt.Fprintln(out)
	}

	printSection(out, "Artifacts")
	fmt.Fprintf(out, "  Run ID: %s\n", state.Run.ID)
	if state.WorkbookPath != "" {
		fmt.Fprintf(out, "  Workbook: %s\n", state.WorkbookPath)
	}
	if c := state.Charts; c != nil {
		for _, path := range []string{c.RatingHistogram, c.YearlyMeanRatings, c.ModelComparison, c.PredictedActual} {
			if path != "" {
				fmt.Fprintf(out, "  Chart: %s\n", path)
			}
		}
	}
}
