package model

import (
	"errors"
	"math"
	"math/rand"
	"sync"
)

// RandomForest averages bootstrap-sampled regression trees. Trees are grown
// concurrently; each gets its own seed so a fit is reproducible for a given
// forest seed.
type RandomForest struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	Seed            int64

	trees     []*RegressionTree
	nFeatures int
}

// NewRandomForest returns a forest with the given size and depth bound.
func NewRandomForest(trees, maxDepth, minSamplesSplit int, seed int64) *RandomForest {
	return &RandomForest{
		Trees:           trees,
		MaxDepth:        maxDepth,
		MinSamplesSplit: minSamplesSplit,
		Seed:            seed,
	}
}

func (f *RandomForest) Name() string { return "Random Forest" }

// Fit grows f.Trees trees on bootstrap samples of X, y.
func (f *RandomForest) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("forest: empty matrix")
	}
	if len(X) != len(y) {
		return errors.New("forest: X and y length mismatch")
	}
	if f.Trees <= 0 {
		return errors.New("forest: tree count must be positive")
	}
	f.nFeatures = len(X[0])
	maxFeatures := int(math.Max(1, math.Round(math.Sqrt(float64(f.nFeatures)))))

	seeder := rand.New(rand.NewSource(f.Seed))
	seeds := make([]int64, f.Trees)
	for i := range seeds {
		seeds[i] = seeder.Int63()
	}

	f.trees = make([]*RegressionTree, f.Trees)
	fitErrs := make([]error, f.Trees)
	var wg sync.WaitGroup
	for i := 0; i < f.Trees; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seeds[i]))
			bx := make([][]float64, len(X))
			by := make([]float64, len(y))
			for j := range bx {
				k := rng.Intn(len(X))
				bx[j] = X[k]
				by[j] = y[k]
			}
			tree := &RegressionTree{
				MaxDepth:        f.MaxDepth,
				MinSamplesSplit: f.MinSamplesSplit,
				MaxFeatures:     maxFeatures,
				Seed:            seeds[i],
			}
			fitErrs[i] = tree.Fit(bx, by)
			f.trees[i] = tree
		}(i)
	}
	wg.Wait()
	return errors.Join(fitErrs...)
}

// Predict averages the per-tree predictions.
func (f *RandomForest) Predict(X [][]float64) []float64 {
	pred := make([]float64, len(X))
	for _, tree := range f.trees {
		for i, p := range tree.Predict(X) {
			pred[i] += p
		}
	}
	for i := range pred {
		pred[i] /= float64(len(f.trees))
	}
	return pred
}

// FeatureImportance sums raw gains across trees and normalizes.
func (f *RandomForest) FeatureImportance() []float64 {
	scores := make([]float64, f.nFeatures)
	for _, tree := range f.trees {
		for j, g := range tree.rawImportance() {
			scores[j] += g
		}
	}
	total := 0.0
	for _, s := range scores {
		total += s
	}
	if total > 0 {
		for j := range scores {
			scores[j] /= total
		}
	}
	return scores
}
