package model

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LinearRegression fits ordinary least squares via a QR solve, with an
// optional ridge penalty on the feature weights (never on the intercept).
type LinearRegression struct {
	Lambda float64

	intercept float64
	coef      []float64
}

// NewLinearRegression returns an OLS regressor; lambda > 0 adds a ridge penalty.
func NewLinearRegression(lambda float64) *LinearRegression {
	return &LinearRegression{Lambda: lambda}
}

func (m *LinearRegression) Name() string { return "Linear Regression" }

// Fit solves the (optionally ridge-augmented) least squares problem.
func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	rows := len(X)
	if rows == 0 {
		return errors.New("linear: empty matrix")
	}
	if rows != len(y) {
		return errors.New("linear: X and y length mismatch")
	}
	cols := len(X[0])

	augRows := rows
	if m.Lambda > 0 {
		augRows += cols
	}

	data := make([]float64, 0, augRows*(cols+1))
	for _, row := range X {
		if len(row) != cols {
			return errors.New("linear: ragged matrix")
		}
		data = append(data, 1)
		data = append(data, row...)
	}
	target := append([]float64(nil), y...)

	if m.Lambda > 0 {
		// Ridge via data augmentation: sqrt(lambda) identity rows with zero
		// targets, skipping the intercept column.
		penalty := math.Sqrt(m.Lambda)
		for j := 0; j < cols; j++ {
			row := make([]float64, cols+1)
			row[j+1] = penalty
			data = append(data, row...)
			target = append(target, 0)
		}
	}

	A := mat.NewDense(augRows, cols+1, data)
	b := mat.NewVecDense(augRows, target)

	var theta mat.VecDense
	if err := theta.SolveVec(A, b); err != nil {
		return fmt.Errorf("linear: solve least squares: %w", err)
	}

	m.intercept = theta.AtVec(0)
	m.coef = make([]float64, cols)
	for j := 0; j < cols; j++ {
		m.coef[j] = theta.AtVec(j + 1)
	}
	return nil
}

// Predict returns fitted values for rows in X.
func (m *LinearRegression) Predict(X [][]float64) []float64 {
	pred := make([]float64, len(X))
	for i, row := range X {
		sum := m.intercept
		for j, v := range row {
			if j < len(m.coef) {
				sum += m.coef[j] * v
			}
		}
		pred[i] = sum
	}
	return pred
}

// Coefficients returns the intercept and feature weights.
func (m *LinearRegression) Coefficients() (intercept float64, coef []float64) {
	return m.intercept, append([]float64(nil), m.coef...)
}

// FeatureImportance reports normalized absolute coefficient magnitudes.
func (m *LinearRegression) FeatureImportance() []float64 {
	scores := make([]float64, len(m.coef))
	total := 0.0
	for j, c := range m.coef {
		scores[j] = math.Abs(c)
		total += scores[j]
	}
	if total > 0 {
		for j := range scores {
			scores[j] /= total
		}
	}
	return scores
}
