package pipeline_test

import (
	"context"
	"os"
	"testing"

	"reelscore/internal/logging"
	"reelscore/internal/pipeline"
	"reelscore/internal/runstore"
	"reelscore/internal/testsupport"
)

func TestRunnerExecutesFullPipeline(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteMoviesCSV(t, cfg.Paths.DataFile, 60)
	store := testsupport.MustOpenStore(t)

	runner := pipeline.New(cfg, store, logging.NewNop())
	state, err := runner.Execute(context.Background(), cfg.Paths.DataFile)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if state.Run.Status != runstore.StatusCompleted {
		t.Fatalf("run status = %s, want completed", state.Run.Status)
	}
	if state.Run.RowsLoaded != 60 {
		t.Fatalf("rows loaded = %d, want 60", state.Run.RowsLoaded)
	}
	if state.Run.RowsClean == 0 || state.Run.RowsClean > 60 {
		t.Fatalf("rows clean = %d out of range", state.Run.RowsClean)
	}
	if state.Run.BestModel == "" {
		t.Fatal("best model not recorded")
	}
	if len(state.Results) != 4 {
		t.Fatalf("got %d model results, want 4", len(state.Results))
	}
	if state.Explore == nil || state.Split == nil {
		t.Fatal("intermediate artifacts missing from state")
	}
	if len(state.Insights) == 0 {
		t.Fatal("no insights derived")
	}

	stored, err := store.ResultsForRun(context.Background(), state.Run.ID)
	if err != nil {
		t.Fatalf("load stored results: %v", err)
	}
	if len(stored) != 4 {
		t.Fatalf("store holds %d results, want 4", len(stored))
	}
	if stored[0].Model != state.Run.BestModel {
		t.Fatalf("stored rank 1 is %s, run says best is %s", stored[0].Model, state.Run.BestModel)
	}

	if state.WorkbookPath == "" {
		t.Fatal("workbook not written")
	}
	if _, err := os.Stat(state.WorkbookPath); err != nil {
		t.Fatalf("workbook missing: %v", err)
	}
	if state.Charts == nil || state.Charts.RatingHistogram == "" {
		t.Fatal("charts not written")
	}

	persisted, err := store.GetByID(context.Background(), state.Run.ID)
	if err != nil {
		t.Fatalf("reload run: %v", err)
	}
	if persisted.Status != runstore.StatusCompleted {
		t.Fatalf("persisted status = %s, want completed", persisted.Status)
	}
}

func TestRunnerMissingDataFileIsReview(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t)

	runner := pipeline.New(cfg, store, logging.NewNop())
	state, err := runner.Execute(context.Background(), cfg.Paths.DataFile)
	if err == nil {
		t.Fatal("expected error for missing data file")
	}
	if state.Run.Status != runstore.StatusReview {
		t.Fatalf("run status = %s, want review", state.Run.Status)
	}
	if state.Run.ErrorMessage == "" {
		t.Fatal("error message not recorded")
	}
}

func TestRunnerBadCSVFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := os.WriteFile(cfg.Paths.DataFile, []byte("Name,Rating\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	store := testsupport.MustOpenStore(t)

	runner := pipeline.New(cfg, store, logging.NewNop())
	state, err := runner.Execute(context.Background(), cfg.Paths.DataFile)
	if err == nil {
		t.Fatal("expected error for empty data file")
	}
	if state.Run.Status != runstore.StatusFailed {
		t.Fatalf("run status = %s, want failed", state.Run.Status)
	}
}
