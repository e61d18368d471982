package model_test

import (
	"reflect"
	"testing"

	"reelscore/internal/config"
	"reelscore/internal/features"
	"reelscore/internal/model"
)

func TestKFoldCoversEveryIndexOnce(t *testing.T) {
	folds := model.KFold(23, 5, 42)
	if len(folds) != 5 {
		t.Fatalf("got %d folds, want 5", len(folds))
	}
	seen := map[int]int{}
	for _, fold := range folds {
		for _, i := range fold {
			seen[i]++
		}
	}
	if len(seen) != 23 {
		t.Fatalf("folds cover %d indices, want 23", len(seen))
	}
	for i, n := range seen {
		if n != 1 {
			t.Fatalf("index %d appears %d times", i, n)
		}
	}
}

func TestKFoldDeterministic(t *testing.T) {
	a := model.KFold(50, 4, 9)
	b := model.KFold(50, 4, 9)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed gave different folds")
	}
}

func TestCrossValR2OnLearnableTarget(t *testing.T) {
	X, y := syntheticLinear(120, 11)
	score, err := model.CrossValR2(func() model.Regressor {
		return model.NewLinearRegression(0)
	}, X, y, 4, 11)
	if err != nil {
		t.Fatalf("cross-validate: %v", err)
	}
	if score < 0.99 {
		t.Fatalf("held-out R2 = %v, want near 1", score)
	}
}

func TestCrossValR2TooFewRows(t *testing.T) {
	X, y := syntheticLinear(5, 12)
	if _, err := model.CrossValR2(func() model.Regressor {
		return model.NewLinearRegression(0)
	}, X, y, 5, 12); err == nil {
		t.Fatal("expected error for too few rows")
	}
}

func TestTuneForestPicksFromGrid(t *testing.T) {
	X, y := syntheticStep(160, 13)
	params, score, err := model.TuneForest(X, y, []int{10, 20}, []int{2, 5}, 2, 3, 13)
	if err != nil {
		t.Fatalf("tune: %v", err)
	}
	if params.Trees != 10 && params.Trees != 20 {
		t.Fatalf("tree count %d not from grid", params.Trees)
	}
	if params.MaxDepth != 2 && params.MaxDepth != 5 {
		t.Fatalf("depth %d not from grid", params.MaxDepth)
	}
	if score <= 0 {
		t.Fatalf("best score = %v, want positive", score)
	}
}

func TestTuneBoostingPicksFromGrid(t *testing.T) {
	X, y := syntheticStep(160, 14)
	params, _, err := model.TuneBoosting(X, y, []float64{0.05, 0.2}, []int{2, 3}, 40, 2, 3, 14)
	if err != nil {
		t.Fatalf("tune: %v", err)
	}
	if params.LearningRate != 0.05 && params.LearningRate != 0.2 {
		t.Fatalf("learning rate %v not from grid", params.LearningRate)
	}
	if params.MaxDepth != 2 && params.MaxDepth != 3 {
		t.Fatalf("depth %d not from grid", params.MaxDepth)
	}
}

func TestTuneRejectsEmptyGrid(t *testing.T) {
	X, y := syntheticStep(60, 15)
	if _, _, err := model.TuneForest(X, y, nil, []int{3}, 2, 3, 15); err == nil {
		t.Fatal("expected error for empty forest grid")
	}
	if _, _, err := model.TuneBoosting(X, y, nil, []int{3}, 10, 2, 3, 15); err == nil {
		t.Fatal("expected error for empty boosting grid")
	}
}

func TestSuiteEvaluateRanksByTestR2(t *testing.T) {
	trainX, trainY := syntheticStep(240, 16)
	testX, testY := syntheticStep(80, 17)
	split := &features.Split{
		Names: []string{"x0", "x1"},
		Train: features.Matrix{X: trainX, Y: trainY},
		Test:  features.Matrix{X: testX, Y: testY},
	}

	cfg := config.Default()
	cfg.Models.ForestTrees = 20
	cfg.Models.BoostingRounds = 40
	cfg.Tuning.Enabled = false
	suite := model.NewSuite(cfg.Models, cfg.Tuning, cfg.Features.Seed)

	results, importance, err := suite.Evaluate(split)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].TestR2 < results[i].TestR2 {
			t.Fatalf("results not ranked: %v before %v", results[i-1].TestR2, results[i].TestR2)
		}
	}
	if results[0].TestR2 < 0.9 {
		t.Fatalf("best model test R2 = %v, want above 0.9", results[0].TestR2)
	}
	// The step target is nonlinear, so a tree model should win over OLS.
	if results[0].Model == "Linear Regression" {
		t.Fatal("linear regression ranked first on a step target")
	}
	if len(results[0].TestPredictions) != len(testY) {
		t.Fatalf("got %d test predictions, want %d", len(results[0].TestPredictions), len(testY))
	}
	if len(importance) != 2 {
		t.Fatalf("got %d importance entries, want 2", len(importance))
	}
	for i := 1; i < len(importance); i++ {
		if importance[i-1].Score < importance[i].Score {
			t.Fatal("importance not sorted descending")
		}
	}
}

func TestSuiteEvaluateWithTuning(t *testing.T) {
	trainX, trainY := syntheticStep(150, 18)
	testX, testY := syntheticStep(50, 19)
	split := &features.Split{
		Names: []string{"x0", "x1"},
		Train: features.Matrix{X: trainX, Y: trainY},
		Test:  features.Matrix{X: testX, Y: testY},
	}

	cfg := config.Default()
	cfg.Models.BoostingRounds = 20
	cfg.Tuning.Enabled = true
	cfg.Tuning.Folds = 3
	cfg.Tuning.ForestTreeGrid = []int{10}
	cfg.Tuning.ForestDepthGrid = []int{3, 5}
	cfg.Tuning.BoostingRateGrid = []float64{0.1}
	cfg.Tuning.BoostingDepthGrid = []int{2, 3}
	suite := model.NewSuite(cfg.Models, cfg.Tuning, cfg.Features.Seed)

	results, _, err := suite.Evaluate(split)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	for _, r := range results {
		switch r.Model {
		case "Random Forest", "Gradient Boosting":
			if !r.Tuned {
				t.Fatalf("%s not marked tuned", r.Model)
			}
		default:
			if r.Tuned {
				t.Fatalf("%s marked tuned", r.Model)
			}
		}
	}
}
