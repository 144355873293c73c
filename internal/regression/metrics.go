package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrConstantTarget means every actual value in the evaluation set is
// identical, so the R² denominator is zero and the score is undefined.
var ErrConstantTarget = errors.New("constant target values: r2 score is undefined")

// Metrics are the goodness-of-fit statistics reported per run.
type Metrics struct {
	R2  float64
	MAE float64
	MSE float64
}

// Evaluate computes R², mean absolute error, and mean squared error over
// row-aligned actual/predicted pairs. All three are order-insensitive plain
// reductions.
func Evaluate(actual, predicted []float64) (*Metrics, error) {
	if len(actual) == 0 {
		return nil, errors.New("no evaluation rows")
	}
	if len(actual) != len(predicted) {
		return nil, fmt.Errorf("actual/predicted length mismatch: %d vs %d", len(actual), len(predicted))
	}

	mean := stat.Mean(actual, nil)
	var ssRes, ssTot, absSum float64
	for i, a := range actual {
		r := a - predicted[i]
		ssRes += r * r
		d := a - mean
		ssTot += d * d
		absSum += math.Abs(r)
	}
	if ssTot == 0 {
		return nil, ErrConstantTarget
	}
	n := float64(len(actual))
	return &Metrics{
		R2:  1 - ssRes/ssTot,
		MAE: absSum / n,
		MSE: ssRes / n,
	}, nil
}
