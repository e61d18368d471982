package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"reelscore/internal/cleaning"
	"reelscore/internal/explore"
	"reelscore/internal/model"
	"reelscore/internal/report"
)

func fixtureExplore() *explore.Report {
	return &explore.Report{
		Ratings:   explore.Descriptive{Count: 4, Mean: 7.0, Std: 0.5, Min: 6.2, Q1: 6.5, Median: 7.0, Q3: 7.5, Max: 7.8},
		Durations: explore.Descriptive{Count: 4, Mean: 120},
		Votes:     explore.Descriptive{Count: 4, Mean: 1500},
		Yearly: []explore.YearStats{
			{Year: 2001, Count: 2, MeanRating: 6.8},
			{Year: 2002, Count: 2, MeanRating: 7.2},
		},
		Genres: []explore.GenreStats{
			{Genre: "Drama", Count: 3, MeanRating: 7.1},
			{Genre: "Action", Count: 1, MeanRating: 6.7},
		},
		TopDirectors: []explore.PersonStats{{Name: "A. Director", Count: 2, MeanRating: 7.3}},
		TopActors:    []explore.PersonStats{{Name: "B. Actor", Count: 2, MeanRating: 7.0}},
		Correlations: explore.Correlation{
			Columns: []string{"year", "rating"},
			Matrix:  [][]float64{{1, 0.4}, {0.4, 1}},
		},
	}
}

func fixtureResults() []model.Result {
	return []model.Result{
		{Model: "Random Forest", TrainR2: 0.95, TestR2: 0.82, TestRMSE: 0.41, TestPredictions: []float64{6.9, 7.1, 7.3}},
		{Model: "Linear Regression", TrainR2: 0.61, TestR2: 0.55, TestRMSE: 0.65},
	}
}

func TestInsights(t *testing.T) {
	importance := []model.Importance{{Feature: "director_mean_rating", Score: 0.4}}
	insights := report.Insights(fixtureExplore(), fixtureResults(), importance)
	if len(insights) != 5 {
		t.Fatalf("got %d insights, want 5", len(insights))
	}
	joined := ""
	for _, in := range insights {
		joined += in.Title + " " + in.Text + "\n"
	}
	for _, want := range []string{"2002", "Drama", "Random Forest", "82.0%", "director_mean_rating"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("insights missing %q:\n%s", want, joined)
		}
	}
}

func TestInsightsEmptyInput(t *testing.T) {
	if got := report.Insights(&explore.Report{}, nil, nil); len(got) != 0 {
		t.Fatalf("got %d insights for empty input, want 0", len(got))
	}
}

func TestWriteCharts(t *testing.T) {
	dir := t.TempDir()
	ratings := []float64{6.2, 6.5, 7.0, 7.5, 7.8, 6.9, 7.1}
	set, err := report.WriteCharts(dir, ratings, fixtureExplore(), fixtureResults(), []float64{6.8, 7.0, 7.4})
	if err != nil {
		t.Fatalf("write charts: %v", err)
	}
	for name, path := range map[string]string{
		"histogram":  set.RatingHistogram,
		"yearly":     set.YearlyMeanRatings,
		"comparison": set.ModelComparison,
		"scatter":    set.PredictedActual,
	} {
		if path == "" {
			t.Fatalf("%s chart not written", name)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("%s chart missing: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s chart is empty", name)
		}
	}
}

func TestWriteChartsSkipsMissingData(t *testing.T) {
	set, err := report.WriteCharts(t.TempDir(), nil, &explore.Report{}, nil, nil)
	if err != nil {
		t.Fatalf("write charts: %v", err)
	}
	if set.RatingHistogram != "" || set.ModelComparison != "" {
		t.Fatalf("expected empty chart set, got %+v", set)
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.xlsx")
	data := &report.WorkbookData{
		SourcePath: "movies.csv",
		Summary:    &cleaning.Summary{RowsIn: 10, RowsOut: 8, DroppedMissingRating: 2},
		Explore:    fixtureExplore(),
		Results:    fixtureResults(),
		Importance: []model.Importance{{Feature: "log_votes", Score: 0.3}},
		Insights:   []report.Insight{{Title: "Best model", Text: "Random Forest"}},
	}
	if err := report.WriteWorkbook(path, data); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	want := []string{"Summary", "Descriptives", "Yearly", "Genres", "People", "Correlations", "Models", "Importance"}
	got := f.GetSheetList()
	for _, sheet := range want {
		found := false
		for _, name := range got {
			if name == sheet {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("workbook missing sheet %q, have %v", sheet, got)
		}
	}

	value, err := f.GetCellValue("Models", "B2")
	if err != nil {
		t.Fatalf("read model cell: %v", err)
	}
	if value != "Random Forest" {
		t.Fatalf("Models!B2 = %q, want Random Forest", value)
	}
}
