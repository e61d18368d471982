package features

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler centers each column to zero mean and unit variance using
// statistics fitted on training rows.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

// Fit computes per-column mean and standard deviation.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("scaler: empty matrix")
	}
	cols := len(X[0])
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)

	column := make([]float64, len(X))
	for j := 0; j < cols; j++ {
		for i := range X {
			column[i] = X[i][j]
		}
		s.Mean[j] = stat.Mean(column, nil)
		s.Std[j] = stat.StdDev(column, nil)
		if s.Std[j] == 0 || math.IsNaN(s.Std[j]) {
			// Constant column: leave values centered only.
			s.Std[j] = 1
		}
	}
	return nil
}

// Transform returns a scaled copy of X.
func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled := make([]float64, len(row))
		for j, value := range row {
			scaled[j] = (value - s.Mean[j]) / s.Std[j]
		}
		out[i] = scaled
	}
	return out
}
