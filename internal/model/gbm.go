package model

import "errors"

// GradientBoosting fits shallow regression trees to the residuals of the
// running prediction, shrunk by the learning rate. Squared-error loss, so
// each round's target is simply y minus the current prediction.
type GradientBoosting struct {
	Rounds          int
	MaxDepth        int
	MinSamplesSplit int
	LearningRate    float64
	Seed            int64

	base      float64
	trees     []*RegressionTree
	nFeatures int
}

// NewGradientBoosting returns a booster with the given schedule.
func NewGradientBoosting(rounds, maxDepth, minSamplesSplit int, learningRate float64, seed int64) *GradientBoosting {
	return &GradientBoosting{
		Rounds:          rounds,
		MaxDepth:        maxDepth,
		MinSamplesSplit: minSamplesSplit,
		LearningRate:    learningRate,
		Seed:            seed,
	}
}

func (g *GradientBoosting) Name() string { return "Gradient Boosting" }

// Fit runs g.Rounds boosting iterations on X, y.
func (g *GradientBoosting) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("boosting: empty matrix")
	}
	if len(X) != len(y) {
		return errors.New("boosting: X and y length mismatch")
	}
	if g.Rounds <= 0 {
		return errors.New("boosting: round count must be positive")
	}
	if g.LearningRate <= 0 {
		return errors.New("boosting: learning rate must be positive")
	}
	g.nFeatures = len(X[0])

	sum := 0.0
	for _, v := range y {
		sum += v
	}
	g.base = sum / float64(len(y))

	current := make([]float64, len(y))
	for i := range current {
		current[i] = g.base
	}
	residual := make([]float64, len(y))

	g.trees = make([]*RegressionTree, 0, g.Rounds)
	for round := 0; round < g.Rounds; round++ {
		for i := range residual {
			residual[i] = y[i] - current[i]
		}
		tree := &RegressionTree{
			MaxDepth:        g.MaxDepth,
			MinSamplesSplit: g.MinSamplesSplit,
			Seed:            g.Seed + int64(round),
		}
		if err := tree.Fit(X, residual); err != nil {
			return err
		}
		for i, p := range tree.Predict(X) {
			current[i] += g.LearningRate * p
		}
		g.trees = append(g.trees, tree)
	}
	return nil
}

// Predict sums the base value and the shrunk tree contributions.
func (g *GradientBoosting) Predict(X [][]float64) []float64 {
	pred := make([]float64, len(X))
	for i := range pred {
		pred[i] = g.base
	}
	for _, tree := range g.trees {
		for i, p := range tree.Predict(X) {
			pred[i] += g.LearningRate * p
		}
	}
	return pred
}

// FeatureImportance sums raw gains across rounds and normalizes.
func (g *GradientBoosting) FeatureImportance() []float64 {
	scores := make([]float64, g.nFeatures)
	for _, tree := range g.trees {
		for j, gain := range tree.rawImportance() {
			scores[j] += gain
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
