package regression

import (
	"errors"
	"math"
	"testing"
)

func TestFitRecoversExactCoefficients(t *testing.T) {
	// y = 5 + 2*x1 - 3*x2, no noise.
	var X [][]float64
	var y []float64
	for i := 0; i < 30; i++ {
		x1 := float64(i)
		x2 := float64((i*7)%11) * 0.5
		X = append(X, []float64{x1, x2})
		y = append(y, 5+2*x1-3*x2)
	}
	m, err := Fit(X, y)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if math.Abs(m.Intercept-5) > 1e-9 {
		t.Errorf("intercept = %v, want 5", m.Intercept)
	}
	want := []float64{2, -3}
	for j, c := range m.Coefficients {
		if math.Abs(c-want[j]) > 1e-9 {
			t.Errorf("coef[%d] = %v, want %v", j, c, want[j])
		}
	}
}

func TestPredict(t *testing.T) {
	m := &Model{Intercept: 1, Coefficients: []float64{2, 3}}
	got := m.Predict([][]float64{{1, 1}, {0, 0}, {2, -1}})
	want := []float64{6, 1, 2}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("pred[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFitSingularMatrix(t *testing.T) {
	// Second feature is an exact copy of the first: rank deficient.
	var X [][]float64
	var y []float64
	for i := 0; i < 20; i++ {
		v := float64(i)
		X = append(X, []float64{v, v})
		y = append(y, 3*v)
	}
	_, err := Fit(X, y)
	if !errors.Is(err, ErrSingularMatrix) {
		t.Fatalf("err = %v, want ErrSingularMatrix", err)
	}
}

func TestFitCollinearScaledColumn(t *testing.T) {
	// x2 = 2*x1: no column repeats byte-for-byte, but the design matrix is
	// still rank deficient.
	var X [][]float64
	var y []float64
	for i := 0; i < 20; i++ {
		v := float64(i)
		X = append(X, []float64{v, 2 * v})
		y = append(y, 3*v)
	}
	_, err := Fit(X, y)
	if !errors.Is(err, ErrSingularMatrix) {
		t.Fatalf("err = %v, want ErrSingularMatrix", err)
	}
}

func TestFitUnderdetermined(t *testing.T) {
	// Fewer rows than parameters cannot pin down a unique solution.
	X := [][]float64{{1, 2}, {3, 4}}
	y := []float64{1, 2}
	if _, err := Fit(X, y); !errors.Is(err, ErrSingularMatrix) {
		t.Fatalf("err = %v, want ErrSingularMatrix", err)
	}
}

func TestFitInputValidation(t *testing.T) {
	if _, err := Fit(nil, nil); err == nil {
		t.Errorf("expected error for empty input")
	}
	if _, err := Fit([][]float64{{1}, {2}}, []float64{1}); err == nil {
		t.Errorf("expected error for length mismatch")
	}
}
