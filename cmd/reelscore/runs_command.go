package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelscore/internal/runstore"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect past analysis runs",
	}

	runsCmd.AddCommand(newRunsListCommand(ctx))
	runsCmd.AddCommand(newRunsShowCommand(ctx))

	return runsCmd
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				best := run.BestModel
				r2 := ""
				if best != "" {
					r2 = formatFloat(run.BestTestR2)
				}
				rows = append(rows, []string{
					shortID(run.ID),
					string(run.Status),
					formatCount(run.RowsClean),
					best,
					r2,
					run.CreatedAt.Local().Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Run", "Status", "Rows", "Best Model", "Test R2", "Started"},
				rows,
				2, 4,
			))

			health, err := store.Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d total: %d completed, %d failed, %d review, %d in progress\n",
				health.Total, health.Completed, health.Failed, health.Review, health.Pending+health.Processing)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run with its model results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := resolveRun(cmd, store, strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSection(out, "Run")
			fmt.Fprintln(out, renderTable(
				[]string{"Field", "Value"},
				[][]string{
					{"ID", run.ID},
					{"Source", run.SourcePath},
					{"Status", string(run.Status)},
					{"Rows loaded", formatCount(run.RowsLoaded)},
					{"Rows clean", formatCount(run.RowsClean)},
					{"Features", formatCount(run.FeatureCount)},
					{"Started", run.CreatedAt.Local().Format("2006-01-02 15:04:05")},
					{"Updated", run.UpdatedAt.Local().Format("2006-01-02 15:04:05")},
				},
			))
			if run.ErrorMessage != "" {
				fmt.Fprintf(out, "Error: %s\n\n", run.ErrorMessage)
			}

			results, err := store.ResultsForRun(cmd.Context(), run.ID)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintln(out, "No model results recorded for this run.")
				return nil
			}

			printSection(out, "Model results")
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				tuned := ""
				if r.Tuned {
					tuned = "yes"
				}
				rows = append(rows, []string{
					formatCount(r.Rank), r.Model,
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
			return nil
		},
	}
	return cmd
}

// resolveRun accepts either a full run ID or an unambiguous prefix.
func resolveRun(cmd *cobra.Command, store *runstore.Store, id string) (*runstore.Run, error) {
	run, err := store.GetByID(cmd.Context(), id)
	if err == nil {
		return run, nil
	}

	runs, listErr := store.List(cmd.Context(), 200)
	if listErr != nil {
		return nil, err
	}
	var match *runstore.Run
	for _, candidate := range runs {
		if strings.HasPrefix(candidate.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("run id prefix %q is ambiguous", id)
			}
			match = candidate
		}
	}
	if match == nil {
		return nil, err
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
