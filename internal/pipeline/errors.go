package pipeline

import "errors"

// Validation gate errors. Messages mirror the user-facing wording the tool
// has always produced.
var (
	// ErrInsufficientColumns means fewer than 2 numeric columns survived
	// cleaning; regression needs at least one feature and one target.
	ErrInsufficientColumns = errors.New("dataset must have at least 2 numeric columns for regression analysis")

	// ErrInsufficientSamples means fewer than 10 rows survived cleaning;
	// below that a train/test split is not meaningful.
	ErrInsufficientSamples = errors.New("dataset must have at least 10 samples after cleaning")
)

// StageError wraps a failure with the name of the pipeline stage it came
// from. All pipeline failures surface through this type.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}
