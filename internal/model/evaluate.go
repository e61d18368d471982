package model

import (
	"sort"

	"reelscore/internal/config"
	"reelscore/internal/features"
)

// Result holds the train and held-out scores for one fitted model.
type Result struct {
	Model           string
	TrainR2         float64
	TestR2          float64
	TrainRMSE       float64
	TestRMSE        float64
	TrainMAE        float64
	TestMAE         float64
	Tuned           bool
	TestPredictions []float64
}

// Importance pairs a feature name with the best model's normalized score.
type Importance struct {
	Feature string
	Score   float64
}

// Suite fits the configured candidate models and ranks them on held-out
// R-squared.
type Suite struct {
	models config.Models
	tuning config.Tuning
	seed   int64
}

// NewSuite returns a suite using the configured model settings.
func NewSuite(models config.Models, tuning config.Tuning, seed int64) *Suite {
	return &Suite{models: models, tuning: tuning, seed: seed}
}

// Evaluate fits every candidate on the train matrix, scores it on both
// matrices, and returns results ranked best first. When tuning is enabled the
// forest and booster are grid-searched on the train split before the final
// fit. The second return value is the best model's feature importance, empty
// when the best model does not expose one.
func (s *Suite) Evaluate(split *features.Split) ([]Result, []Importance, error) {
	candidates, tuned, err := s.candidates(split.Train)
	if err != nil {
		return nil, nil, err
	}

	results := make([]Result, 0, len(candidates))
	fitted := make(map[string]Regressor, len(candidates))
	for _, m := range candidates {
		if err := m.Fit(split.Train.X, split.Train.Y); err != nil {
			return nil, nil, err
		}
		trainPred := m.Predict(split.Train.X)
		testPred := m.Predict(split.Test.X)
		results = append(results, Result{
			Model:           m.Name(),
			TrainR2:         R2(split.Train.Y, trainPred),
			TestR2:          R2(split.Test.Y, testPred),
			TrainRMSE:       RMSE(split.Train.Y, trainPred),
			TestRMSE:        RMSE(split.Test.Y, testPred),
			TrainMAE:        MAE(split.Train.Y, trainPred),
			TestMAE:         MAE(split.Test.Y, testPred),
			Tuned:           tuned[m.Name()],
			TestPredictions: testPred,
		})
		fitted[m.Name()] = m
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].TestR2 != results[b].TestR2 {
			return results[a].TestR2 > results[b].TestR2
		}
		return results[a].TestRMSE < results[b].TestRMSE
	})

	importance := s.importance(fitted[results[0].Model], split.Names)
	return results, importance, nil
}

func (s *Suite) candidates(train features.Matrix) ([]Regressor, map[string]bool, error) {
	forestTrees := s.models.ForestTrees
	forestDepth := s.models.ForestMaxDepth
	boostRate := s.models.BoostingLearningRate
	boostDepth := s.models.BoostingMaxDepth
	tuned := map[string]bool{}

	if s.tuning.Enabled {
		fp, _, err := TuneForest(train.X, train.Y,
			s.tuning.ForestTreeGrid, s.tuning.ForestDepthGrid,
			s.models.TreeMinSamplesSplit, s.tuning.Folds, s.seed)
		if err != nil {
			return nil, nil, err
		}
		forestTrees, forestDepth = fp.Trees, fp.MaxDepth
		tuned["Random Forest"] = true

		bp, _, err := TuneBoosting(train.X, train.Y,
			s.tuning.BoostingRateGrid, s.tuning.BoostingDepthGrid,
			s.models.BoostingRounds, s.models.TreeMinSamplesSplit,
			s.tuning.Folds, s.seed)
		if err != nil {
			return nil, nil, err
		}
		boostRate, boostDepth = bp.LearningRate, bp.MaxDepth
		tuned["Gradient Boosting"] = true
	}

	return []Regressor{
		NewLinearRegression(s.models.RidgeLambda),
		NewRegressionTree(s.models.TreeMaxDepth, s.models.TreeMinSamplesSplit, s.seed),
		NewRandomForest(forestTrees, forestDepth, s.models.TreeMinSamplesSplit, s.seed),
		NewGradientBoosting(s.models.BoostingRounds, boostDepth, s.models.TreeMinSamplesSplit, boostRate, s.seed),
	}, tuned, nil
}

func (s *Suite) importance(best Regressor, names []string) []Importance {
	ranker, ok := best.(FeatureRanker)
	if !ok {
		return nil
	}
	scores := ranker.FeatureImportance()
	out := make([]Importance, 0, len(scores))
	for j, score := range scores {
		name := ""
		if j < len(names) {
			name = names[j]
		}
		out = append(out, Importance{Feature: name, Score: score})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	return out
}
