// Package regression fits an ordinary least-squares linear model and scores
// its predictions.
package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrSingularMatrix means the design matrix is rank-deficient (or close
// enough that the least-squares solution is not unique).
var ErrSingularMatrix = errors.New("singular feature matrix: least-squares solution is not unique")

// Model holds OLS parameters. Immutable once fit.
type Model struct {
	Coefficients []float64
	Intercept    float64
}

// Fit solves ordinary least squares over the training rows via QR
// factorization of the design matrix (a leading ones column models the
// intercept). At full column rank this is the unique minimizer of the sum of
// squared residuals.
func Fit(X [][]float64, y []float64) (*Model, error) {
	n := len(X)
	if n == 0 {
		return nil, errors.New("no training rows")
	}
	if len(y) != n {
		return nil, fmt.Errorf("feature/target length mismatch: %d vs %d", n, len(y))
	}
	p := len(X[0])
	if p == 0 {
		return nil, errors.New("no feature columns")
	}
	if n < p+1 {
		return nil, fmt.Errorf("%w: %d rows for %d parameters", ErrSingularMatrix, n, p+1)
	}

	a := mat.NewDense(n, p+1, nil)
	for i, row := range X {
		if len(row) != p {
			return nil, fmt.Errorf("ragged feature row %d: %d values, want %d", i, len(row), p)
		}
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}
	b := mat.NewVecDense(n, append([]float64(nil), y...))

	// Rank check up front: the QR solver's own condition gate (1e16) is too
	// lax to reliably reject exact collinearity, so effective rank is
	// determined from the singular values instead.
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return nil, fmt.Errorf("%w: svd factorization failed", ErrSingularMatrix)
	}
	sv := svd.Values(nil)
	eps := math.Nextafter(1, 2) - 1
	if sv[0] == 0 || sv[len(sv)-1] <= float64(n)*eps*sv[0] {
		return nil, fmt.Errorf("%w: effective rank below %d", ErrSingularMatrix, p+1)
	}

	var qr mat.QR
	qr.Factorize(a)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}

	m := &Model{Intercept: sol.AtVec(0), Coefficients: make([]float64, p)}
	for j := 0; j < p; j++ {
		m.Coefficients[j] = sol.AtVec(j + 1)
	}
	if !finite(m.Intercept) {
		return nil, ErrSingularMatrix
	}
	for _, c := range m.Coefficients {
		if !finite(c) {
			return nil, ErrSingularMatrix
		}
	}
	return m, nil
}

// Predict returns intercept + Σ coef_j·x_j for each row. Pure function of
// the fitted parameters.
func (m *Model) Predict(X [][]float64) []float64 {
	pred := make([]float64, len(X))
	for i, row := range X {
		pred[i] = m.Intercept + floats.Dot(m.Coefficients, row)
	}
	return pred
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
