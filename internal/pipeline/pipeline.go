// Package pipeline wires the regression stages together: clean, select,
// split, fit, evaluate, assemble. Every stage is pure and any failure aborts
// the run with a stage-identified error.
package pipeline

import (
	"github.com/KaramelBytes/tabfit-cli/internal/regression"
	"github.com/KaramelBytes/tabfit-cli/internal/report"
	"github.com/KaramelBytes/tabfit-cli/internal/table"
)

// Options are the run-level knobs. They are passed in explicitly; the
// pipeline keeps no package state.
type Options struct {
	// TestFraction of rows held out for evaluation.
	TestFraction float64
	// Seed for the split permutation.
	Seed int64
}

// DefaultOptions returns the historical defaults: 80/20 split, seed 42.
func DefaultOptions() Options {
	return Options{TestFraction: 0.2, Seed: 42}
}

// Run executes the full pipeline over a loaded table and returns the single
// result record.
func Run(t *table.Table, opt Options) (*report.Result, error) {
	totalRows := t.Rows()

	cleaned, err := Clean(t)
	if err != nil {
		return nil, stageErr("clean", err)
	}

	X, y, featureNames, targetName, err := SelectColumns(cleaned)
	if err != nil {
		return nil, stageErr("select", err)
	}

	XTrain, XTest, yTrain, yTest := Split(X, y, opt.TestFraction, opt.Seed)

	model, err := regression.Fit(XTrain, yTrain)
	if err != nil {
		return nil, stageErr("fit", err)
	}
	yPred := model.Predict(XTest)

	m, err := regression.Evaluate(yTest, yPred)
	if err != nil {
		return nil, stageErr("evaluate", err)
	}

	info := report.DatasetInfo{
		TotalRows:         totalRows,
		RowsAfterCleaning: cleaned.Rows(),
		FeatureColumns:    len(featureNames),
		TargetColumn:      targetName,
		FeatureNames:      featureNames,
		TrainSize:         len(XTrain),
		TestSize:          len(XTest),
	}
	return report.New(t.Name, m.R2, m.MAE, m.MSE, info), nil
}
