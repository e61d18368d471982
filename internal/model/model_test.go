package model_test

import (
	"math"
	"math/rand"
	"testing"

	"reelscore/internal/model"
)

// syntheticLinear builds y = 3 + 2*x0 - 1.5*x1 with no noise.
func syntheticLinear(n int, seed int64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := range X {
		x0 := rng.Float64() * 10
		x1 := rng.Float64() * 10
		X[i] = []float64{x0, x1}
		y[i] = 3 + 2*x0 - 1.5*x1
	}
	return X, y
}

// syntheticStep builds a piecewise-constant target a tree can fit exactly.
func syntheticStep(n int, seed int64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := range X {
		x0 := rng.Float64() * 10
		x1 := rng.Float64() * 10
		X[i] = []float64{x0, x1}
		switch {
		case x0 < 5 && x1 < 5:
			y[i] = 1
		case x0 < 5:
			y[i] = 4
		case x1 < 5:
			y[i] = 7
		default:
			y[i] = 10
		}
	}
	return X, y
}

func TestLinearRegressionRecoversCoefficients(t *testing.T) {
	X, y := syntheticLinear(200, 1)
	m := model.NewLinearRegression(0)
	if err := m.Fit(X, y); err != nil {
		t.Fatalf("fit: %v", err)
	}
	intercept, coef := m.Coefficients()
	if math.Abs(intercept-3) > 1e-6 {
		t.Fatalf("intercept = %v, want 3", intercept)
	}
	want := []float64{2, -1.5}
	for i, w := range want {
		if math.Abs(coef[i]-w) > 1e-6 {
			t.Fatalf("coefficient %d = %v, want %v", i, coef[i], w)
		}
	}
	if r2 := model.R2(y, m.Predict(X)); r2 < 0.999 {
		t.Fatalf("train R2 = %v, want near 1", r2)
	}
}

func TestLinearRegressionRidgeShrinks(t *testing.T) {
	X, y := syntheticLinear(50, 2)
	plain := model.NewLinearRegression(0)
	ridge := model.NewLinearRegression(100)
	if err := plain.Fit(X, y); err != nil {
		t.Fatalf("plain fit: %v", err)
	}
	if err := ridge.Fit(X, y); err != nil {
		t.Fatalf("ridge fit: %v", err)
	}
	_, plainCoef := plain.Coefficients()
	_, ridgeCoef := ridge.Coefficients()
	pn, rn := 0.0, 0.0
	for i := range plainCoef {
		pn += math.Abs(plainCoef[i])
		rn += math.Abs(ridgeCoef[i])
	}
	if rn >= pn {
		t.Fatalf("ridge weight norm %v not smaller than OLS %v", rn, pn)
	}
}

func TestRegressionTreeFitsStepFunction(t *testing.T) {
	X, y := syntheticStep(300, 3)
	tree := model.NewRegressionTree(4, 2, 1)
	if err := tree.Fit(X, y); err != nil {
		t.Fatalf("fit: %v", err)
	}
	if r2 := model.R2(y, tree.Predict(X)); r2 < 0.99 {
		t.Fatalf("train R2 = %v, want near 1", r2)
	}
	imp := tree.FeatureImportance()
	total := 0.0
	for _, s := range imp {
		if s < 0 {
			t.Fatalf("negative importance %v", s)
		}
		total += s
	}
	if math.Abs(total-1) > 1e-9 {
		t.Fatalf("importance sums to %v, want 1", total)
	}
}

func TestRegressionTreeDepthBound(t *testing.T) {
	X, y := syntheticStep(300, 4)
	stump := model.NewRegressionTree(1, 2, 1)
	deep := model.NewRegressionTree(6, 2, 1)
	if err := stump.Fit(X, y); err != nil {
		t.Fatalf("stump fit: %v", err)
	}
	if err := deep.Fit(X, y); err != nil {
		t.Fatalf("deep fit: %v", err)
	}
	sr := model.R2(y, stump.Predict(X))
	dr := model.R2(y, deep.Predict(X))
	if sr >= dr {
		t.Fatalf("stump R2 %v not below deep tree R2 %v", sr, dr)
	}
}

func TestRandomForestFitAndReproducibility(t *testing.T) {
	X, y := syntheticStep(300, 5)
	a := model.NewRandomForest(30, 5, 2, 7)
	b := model.NewRandomForest(30, 5, 2, 7)
	if err := a.Fit(X, y); err != nil {
		t.Fatalf("fit: %v", err)
	}
	if err := b.Fit(X, y); err != nil {
		t.Fatalf("fit: %v", err)
	}
	pa := a.Predict(X)
	pb := b.Predict(X)
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("same seed gave different prediction at %d: %v vs %v", i, pa[i], pb[i])
		}
	}
	if r2 := model.R2(y, pa); r2 < 0.9 {
		t.Fatalf("train R2 = %v, want above 0.9", r2)
	}
}

func TestGradientBoostingImprovesWithRounds(t *testing.T) {
	X, y := syntheticStep(300, 6)
	few := model.NewGradientBoosting(5, 3, 2, 0.1, 1)
	many := model.NewGradientBoosting(100, 3, 2, 0.1, 1)
	if err := few.Fit(X, y); err != nil {
		t.Fatalf("few fit: %v", err)
	}
	if err := many.Fit(X, y); err != nil {
		t.Fatalf("many fit: %v", err)
	}
	fr := model.R2(y, few.Predict(X))
	mr := model.R2(y, many.Predict(X))
	if mr <= fr {
		t.Fatalf("100 rounds R2 %v not above 5 rounds R2 %v", mr, fr)
	}
	if mr < 0.95 {
		t.Fatalf("train R2 = %v, want above 0.95", mr)
	}
}

func TestFitRejectsBadInput(t *testing.T) {
	models := []model.Regressor{
		model.NewLinearRegression(0),
		model.NewRegressionTree(3, 2, 1),
		model.NewRandomForest(5, 3, 2, 1),
		model.NewGradientBoosting(5, 3, 2, 0.1, 1),
	}
	for _, m := range models {
		if err := m.Fit(nil, nil); err == nil {
			t.Fatalf("%s accepted empty matrix", m.Name())
		}
		if err := m.Fit([][]float64{{1}, {2}}, []float64{1}); err == nil {
			t.Fatalf("%s accepted length mismatch", m.Name())
		}
	}
}
