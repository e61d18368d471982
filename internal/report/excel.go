package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"reelscore/internal/cleaning"
	"reelscore/internal/explore"
	"reelscore/internal/model"
)

// WorkbookData bundles everything the Excel report renders.
type WorkbookData struct {
	SourcePath string
	Summary    *cleaning.Summary
	Explore    *explore.Report
	Results    []model.Result
	Importance []model.Importance
	Insights   []Insight
}

// WriteWorkbook renders the full analysis workbook to path.
func WriteWorkbook(path string, data *WorkbookData) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := summarySheet(f, data); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}
	if data.Explore != nil {
		if err := exploreSheets(f, data.Explore); err != nil {
			return fmt.Errorf("exploration sheets: %w", err)
		}
	}
	if len(data.Results) > 0 {
		if err := modelSheet(f, data.Results); err != nil {
			return fmt.Errorf("model sheet: %w", err)
		}
	}
	if len(data.Importance) > 0 {
		if err := importanceSheet(f, data.Importance); err != nil {
			return fmt.Errorf("importance sheet: %w", err)
		}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func summarySheet(f *excelize.File, data *WorkbookData) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]any{
		{"Source", data.SourcePath},
	}
	if s := data.Summary; s != nil {
		rows = append(rows,
			[]any{"Rows loaded", s.RowsIn},
			[]any{"Rows after cleaning", s.RowsOut},
			[]any{"Dropped (missing rating)", s.DroppedMissingRating},
			[]any{"Dropped (duplicates)", s.DroppedDuplicates},
			[]any{"Imputed years", s.ImputedYears},
			[]any{"Imputed durations", s.ImputedDurations},
			[]any{"Imputed vote counts", s.ImputedVotes},
		)
	}
	if err := writeRows(f, sheet, 1, rows); err != nil {
		return err
	}

	start := len(rows) + 2
	if err := setCell(f, sheet, 1, start, "Insights"); err != nil {
		return err
	}
	for i, insight := range data.Insights {
		if err := setCell(f, sheet, 1, start+1+i, insight.Title); err != nil {
			return err
		}
		if err := setCell(f, sheet, 2, start+1+i, insight.Text); err != nil {
			return err
		}
	}
	return nil
}

func exploreSheets(f *excelize.File, exp *explore.Report) error {
	rows := [][]any{
		{"Metric", "Rating", "Duration", "Votes"},
		{"Count", exp.Ratings.Count, exp.Durations.Count, exp.Votes.Count},
		{"Mean", exp.Ratings.Mean, exp.Durations.Mean, exp.Votes.Mean},
		{"Std", exp.Ratings.Std, exp.Durations.Std, exp.Votes.Std},
		{"Min", exp.Ratings.Min, exp.Durations.Min, exp.Votes.Min},
		{"25%", exp.Ratings.Q1, exp.Durations.Q1, exp.Votes.Q1},
		{"Median", exp.Ratings.Median, exp.Durations.Median, exp.Votes.Median},
		{"75%", exp.Ratings.Q3, exp.Durations.Q3, exp.Votes.Q3},
		{"Max", exp.Ratings.Max, exp.Durations.Max, exp.Votes.Max},
	}
	if err := addSheet(f, "Descriptives", rows); err != nil {
		return err
	}

	yearly := [][]any{{"Year", "Movies", "Mean Rating"}}
	for _, ys := range exp.Yearly {
		yearly = append(yearly, []any{ys.Year, ys.Count, ys.MeanRating})
	}
	if err := addSheet(f, "Yearly", yearly); err != nil {
		return err
	}

	genres := [][]any{{"Genre", "Movies", "Mean Rating"}}
	for _, gs := range exp.Genres {
		genres = append(genres, []any{gs.Genre, gs.Count, gs.MeanRating})
	}
	if err := addSheet(f, "Genres", genres); err != nil {
		return err
	}

	people := [][]any{{"Role", "Name", "Movies", "Mean Rating"}}
	for _, ps := range exp.TopDirectors {
		people = append(people, []any{"Director", ps.Name, ps.Count, ps.MeanRating})
	}
	for _, ps := range exp.TopActors {
		people = append(people, []any{"Actor", ps.Name, ps.Count, ps.MeanRating})
	}
	if err := addSheet(f, "People", people); err != nil {
		return err
	}

	corr := [][]any{}
	header := []any{""}
	for _, col := range exp.Correlations.Columns {
		header = append(header, col)
	}
	corr = append(corr, header)
	for i, col := range exp.Correlations.Columns {
		row := []any{col}
		for _, v := range exp.Correlations.Matrix[i] {
			row = append(row, v)
		}
		corr = append(corr, row)
	}
	return addSheet(f, "Correlations", corr)
}

func modelSheet(f *excelize.File, results []model.Result) error {
	rows := [][]any{{"Rank", "Model", "Train R2", "Test R2", "Train RMSE", "Test RMSE", "Train MAE", "Test MAE", "Tuned"}}
	for i, r := range results {
		rows = append(rows, []any{i + 1, r.Model, r.TrainR2, r.TestR2, r.TrainRMSE, r.TestRMSE, r.TrainMAE, r.TestMAE, r.Tuned})
	}
	return addSheet(f, "Models", rows)
}

func importanceSheet(f *excelize.File, importance []model.Importance) error {
	rows := [][]any{{"Feature", "Importance"}}
	for _, imp := range importance {
		rows = append(rows, []any{imp.Feature, imp.Score})
	}
	return addSheet(f, "Importance", rows)
}

func addSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return writeRows(f, name, 1, rows)
}

func writeRows(f *excelize.File, sheet string, startRow int, rows [][]any) error {
	for i, row := range rows {
		for j, value := range row {
			if err := setCell(f, sheet, j+1, startRow+i, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
