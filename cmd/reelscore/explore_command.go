package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelscore/internal/cleaning"
	"reelscore/internal/config"
	"reelscore/internal/dataset"
	"reelscore/internal/explore"
)

func newExploreCommand(ctx *commandContext) *cobra.Command {
	var head int

	cmd := &cobra.Command{
		Use:   "explore [data-file]",
		Short: "Print the exploratory analysis without training models",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				cfg.Paths.DataFile = strings.TrimSpace(args[0])
			}

			dataFile, err := config.ExpandPath(cfg.Paths.DataFile)
			if err != nil {
				return fmt.Errorf("resolve data file: %w", err)
			}
			raw, err := dataset.Load(dataFile, cfg.Dataset.MissingTokens)
			if err != nil {
				return err
			}
			table, summary, err := cleaning.Clean(raw, cfg.Cleaning)
			if err != nil {
				return err
			}
			report := explore.Analyze(table, cfg.Explore)

			out := cmd.OutOrStdout()
			printSection(out, "Dataset")
			fmt.Fprintf(out, "  %s: %d rows, %d usable after cleaning\n\n", raw.Path, summary.RowsIn, summary.RowsOut)

			printSection(out, "Columns")
			infoRows := make([][]string, 0, raw.Cols())
			for _, info := range raw.Info() {
				infoRows = append(infoRows, []string{info.Name, info.Kind, formatCount(info.Missing)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Column", "Kind", "Missing"},
				infoRows,
				2,
			))

			if head > 0 {
				if records := raw.Head(head); len(records) > 1 {
					printSection(out, "Sample rows")
					fmt.Fprintln(out, renderTable(records[0], records[1:]))
				}
			}

			printSection(out, "Descriptive statistics")
			fmt.Fprintln(out, renderTable(
				[]string{"Metric", "Rating", "Duration", "Votes"},
				descriptiveRows(report),
				1, 2, 3,
			))

			printSection(out, "Top genres by mean rating")
			genreRows := make([][]string, 0, len(report.Genres))
			for _, gs := range report.Genres {
				genreRows = append(genreRows, []string{gs.Genre, formatCount(gs.Count), formatRating(gs.MeanRating)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Genre", "Movies", "Mean Rating"},
				genreRows,
				1, 2,
			))

			printSection(out, "Top directors")
			fmt.Fprintln(out, renderTable(
				[]string{"Director", "Movies", "Mean Rating"},
				personRows(report.TopDirectors),
				1, 2,
			))

			printSection(out, "Top actors")
			fmt.Fprintln(out, renderTable(
				[]string{"Actor", "Movies", "Mean Rating"},
				personRows(report.TopActors),
				1, 2,
			))

			if best, ok := report.BestYear(); ok {
				fmt.Fprintf(out, "Best rated year: %d (%.2f mean across %d movies)\n", best.Year, best.MeanRating, best.Count)
			}
			if busy, ok := report.MostProductiveYear(); ok {
				fmt.Fprintf(out, "Most productive year: %d (%d movies)\n", busy.Year, busy.Count)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&head, "head", 0, "Also print the first N raw rows")
	return cmd
}

func descriptiveRows(report *explore.Report) [][]string {
	row := func(metric string, pick func(explore.Descriptive) string) []string {
		return []string{
			metric,
			pick(report.Ratings),
			pick(report.Durations),
			pick(report.Votes),
		}
	}
	return [][]string{
		row("Count", func(d explore.Descriptive) string { return formatCount(d.Count) }),
		row("Mean", func(d explore.Descriptive) string { return formatFloat(d.Mean) }),
		row("Std", func(d explore.Descriptive) string { return formatFloat(d.Std) }),
		row("Min", func(d explore.Descriptive) string { return formatFloat(d.Min) }),
		row("25%", func(d explore.Descriptive) string { return formatFloat(d.Q1) }),
		row("Median", func(d explore.Descriptive) string { return formatFloat(d.Median) }),
		row("75%", func(d explore.Descriptive) string { return formatFloat(d.Q3) }),
		row("Max", func(d explore.Descriptive) string { return formatFloat(d.Max) }),
	}
}

func personRows(people []explore.PersonStats) [][]string {
	rows := make([][]string, 0, len(people))
	for _, ps := range people {
		rows = append(rows, []string{ps.Name, formatCount(ps.Count), formatRating(ps.MeanRating)})
	}
	return rows
}
