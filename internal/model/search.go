package model

import (
	"errors"
	"math/rand"
)

// ForestParams is a tuned random forest configuration.
type ForestParams struct {
	Trees    int
	MaxDepth int
}

// BoostingParams is a tuned gradient boosting configuration.
type BoostingParams struct {
	LearningRate float64
	MaxDepth     int
}

// KFold partitions n shuffled indices into k folds. The shuffle is seeded so
// a search is reproducible.
func KFold(n, k int, seed int64) [][]int {
	if k < 2 {
		k = 2
	}
	if k > n {
		k = n
	}
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	folds := make([][]int, k)
	for i, idx := range perm {
		folds[i%k] = append(folds[i%k], idx)
	}
	return folds
}

// CrossValR2 averages held-out R-squared over k folds, building a fresh model
// per fold.
func CrossValR2(build func() Regressor, X [][]float64, y []float64, k int, seed int64) (float64, error) {
	if len(X) < 2*k {
		return 0, errors.New("search: too few rows for cross-validation")
	}
	folds := KFold(len(X), k, seed)
	total := 0.0
	for _, hold := range folds {
		holdSet := make(map[int]bool, len(hold))
		for _, i := range hold {
			holdSet[i] = true
		}
		var trainX, testX [][]float64
		var trainY, testY []float64
		for i := range X {
			if holdSet[i] {
				testX = append(testX, X[i])
				testY = append(testY, y[i])
			} else {
				trainX = append(trainX, X[i])
				trainY = append(trainY, y[i])
			}
		}
		m := build()
		if err := m.Fit(trainX, trainY); err != nil {
			return 0, err
		}
		total += R2(testY, m.Predict(testX))
	}
	return total / float64(len(folds)), nil
}

// TuneForest grid-searches tree count and depth by cross-validated R-squared.
func TuneForest(X [][]float64, y []float64, treeGrid, depthGrid []int, minSamplesSplit, folds int, seed int64) (ForestParams, float64, error) {
	if len(treeGrid) == 0 || len(depthGrid) == 0 {
		return ForestParams{}, 0, errors.New("search: empty forest grid")
	}
	best := ForestParams{}
	bestScore := 0.0
	first := true
	for _, trees := range treeGrid {
		for _, depth := range depthGrid {
			trees, depth := trees, depth
			score, err := CrossValR2(func() Regressor {
				return NewRandomForest(trees, depth, minSamplesSplit, seed)
			}, X, y, folds, seed)
			if err != nil {
				return ForestParams{}, 0, err
			}
			if first || score > bestScore {
				first = false
				bestScore = score
				best = ForestParams{Trees: trees, MaxDepth: depth}
			}
		}
	}
	return best, bestScore, nil
}

// TuneBoosting grid-searches learning rate and depth by cross-validated
// R-squared.
func TuneBoosting(X [][]float64, y []float64, rateGrid []float64, depthGrid []int, rounds, minSamplesSplit, folds int, seed int64) (BoostingParams, float64, error) {
	if len(rateGrid) == 0 || len(depthGrid) == 0 {
		return BoostingParams{}, 0, errors.New("search: empty boosting grid")
	}
	best := BoostingParams{}
	bestScore := 0.0
	first := true
	for _, rate := range rateGrid {
		for _, depth := range depthGrid {
			rate, depth := rate, depth
			score, err := CrossValR2(func() Regressor {
				return NewGradientBoosting(rounds, depth, minSamplesSplit, rate, seed)
			}, X, y, folds, seed)
			if err != nil {
				return BoostingParams{}, 0, err
			}
			if first || score > bestScore {
				first = false
				bestScore = score
				best = BoostingParams{LearningRate: rate, MaxDepth: depth}
			}
		}
	}
	return best, bestScore, nil
}
