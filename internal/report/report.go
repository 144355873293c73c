// Package report assembles and encodes the single result record a pipeline
// run produces.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// DatasetInfo carries dataset provenance alongside the metrics.
type DatasetInfo struct {
	TotalRows         int      `json:"total_rows"`
	RowsAfterCleaning int      `json:"rows_after_cleaning"`
	FeatureColumns    int      `json:"feature_columns"`
	TargetColumn      string   `json:"target_column"`
	FeatureNames      []string `json:"feature_names"`
	TrainSize         int      `json:"train_size"`
	TestSize          int      `json:"test_size"`
}

// Result is the sole artifact of a successful run.
type Result struct {
	RunID       string      `json:"run_id"`
	SourceFile  string      `json:"source_file,omitempty"`
	R2Score     float64     `json:"r2_score"`
	MAE         float64     `json:"mae"`
	MSE         float64     `json:"mse"`
	DatasetInfo DatasetInfo `json:"dataset_info"`
}

// New builds a Result with a fresh run ID.
func New(source string, r2, mae, mse float64, info DatasetInfo) *Result {
	return &Result{
		RunID:       uuid.NewString(),
		SourceFile:  source,
		R2Score:     r2,
		MAE:         mae,
		MSE:         mse,
		DatasetInfo: info,
	}
}

// Encode writes the result as a single JSON record, indented when pretty is
// set.
func (r *Result) Encode(w io.Writer, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// WriteFile atomically writes the encoded result to path: write to a temp
// file, then rename into place.
func (r *Result) WriteFile(path string, pretty bool) error {
	var b strings.Builder
	if err := r.Encode(&b, pretty); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

// Markdown renders a human-readable summary of the result.
func (r *Result) Markdown() string {
	var b strings.Builder
	b.WriteString("[REGRESSION RESULT]\n")
	if r.SourceFile != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.SourceFile))
	}
	b.WriteString(fmt.Sprintf("Target: %s\n", r.DatasetInfo.TargetColumn))
	b.WriteString(fmt.Sprintf("Features (%d): %s\n", r.DatasetInfo.FeatureColumns, strings.Join(r.DatasetInfo.FeatureNames, ", ")))
	b.WriteString(fmt.Sprintf("Rows: %d total, %d after cleaning (train %d / test %d)\n\n",
		r.DatasetInfo.TotalRows, r.DatasetInfo.RowsAfterCleaning, r.DatasetInfo.TrainSize, r.DatasetInfo.TestSize))
	b.WriteString("[METRICS]\n")
	b.WriteString(fmt.Sprintf("- r2_score: %.6g\n", r.R2Score))
	b.WriteString(fmt.Sprintf("- mae: %.6g\n", r.MAE))
	b.WriteString(fmt.Sprintf("- mse: %.6g\n", r.MSE))
	return b.String()
}

// ErrorRecord is the single record emitted on failure.
type ErrorRecord struct {
	Error string `json:"error"`
}

// WriteError encodes one error record to w.
func WriteError(w io.Writer, err error) {
	_ = json.NewEncoder(w).Encode(ErrorRecord{Error: err.Error()})
}
