package model

// Regressor is the fit/predict contract every candidate model implements.
type Regressor interface {
	Name() string
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) []float64
}

// FeatureRanker is implemented by regressors that can attribute predictive
// weight to individual features. Scores are non-negative and sum to 1.
type FeatureRanker interface {
	FeatureImportance() []float64
}
