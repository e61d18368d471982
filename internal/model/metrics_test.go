package model_test

import (
	"math"
	"testing"

	"reelscore/internal/model"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestMetricsPerfectPrediction(t *testing.T) {
	y := []float64{1, 2, 3, 4}
	if got := model.R2(y, y); !almostEqual(got, 1) {
		t.Fatalf("R2 for perfect prediction = %v, want 1", got)
	}
	if got := model.RMSE(y, y); !almostEqual(got, 0) {
		t.Fatalf("RMSE for perfect prediction = %v, want 0", got)
	}
	if got := model.MAE(y, y); !almostEqual(got, 0) {
		t.Fatalf("MAE for perfect prediction = %v, want 0", got)
	}
}

func TestMetricsKnownValues(t *testing.T) {
	y := []float64{1, 2, 3}
	pred := []float64{2, 2, 2}
	if got := model.MAE(y, pred); !almostEqual(got, 2.0/3.0) {
		t.Fatalf("MAE = %v, want 2/3", got)
	}
	if got := model.MSE(y, pred); !almostEqual(got, 2.0/3.0) {
		t.Fatalf("MSE = %v, want 2/3", got)
	}
	if got := model.RMSE(y, pred); !almostEqual(got, math.Sqrt(2.0/3.0)) {
		t.Fatalf("RMSE = %v, want sqrt(2/3)", got)
	}
	// Predicting the mean scores exactly zero.
	if got := model.R2(y, pred); !almostEqual(got, 0) {
		t.Fatalf("R2 for mean prediction = %v, want 0", got)
	}
}

func TestR2ConstantTarget(t *testing.T) {
	y := []float64{5, 5, 5}
	if got := model.R2(y, []float64{4, 5, 6}); got != 0 {
		t.Fatalf("R2 on constant target = %v, want 0", got)
	}
}
