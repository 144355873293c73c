package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func sampleResult() *Result {
	return New("data.csv", 0.95, 0.5, 0.375, DatasetInfo{
		TotalRows:         20,
		RowsAfterCleaning: 18,
		FeatureColumns:    2,
		TargetColumn:      "c",
		FeatureNames:      []string{"a", "b"},
		TrainSize:         14,
		TestSize:          4,
	})
}

func TestEncodeRoundTrip(t *testing.T) {
	res := sampleResult()
	var buf bytes.Buffer
	if err := res.Encode(&buf, false); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var back Result
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.R2Score != res.R2Score || back.DatasetInfo.TargetColumn != "c" {
		t.Errorf("round trip mismatch: %+v", back)
	}
	if back.RunID == "" {
		t.Errorf("run_id not carried through")
	}
	for _, key := range []string{"r2_score", "mae", "mse", "dataset_info", "feature_names"} {
		if !strings.Contains(buf.String(), `"`+key+`"`) {
			t.Errorf("encoded record missing key %q", key)
		}
	}
}

func TestEncodePrettyIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleResult().Encode(&buf, true); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Errorf("pretty output not indented:\n%s", buf.String())
	}
}

func TestNewAssignsUniqueRunIDs(t *testing.T) {
	a, b := sampleResult(), sampleResult()
	if a.RunID == b.RunID {
		t.Errorf("run IDs should be unique: %s", a.RunID)
	}
}

func TestMarkdown(t *testing.T) {
	md := sampleResult().Markdown()
	for _, want := range []string{"[REGRESSION RESULT]", "Target: c", "train 14 / test 4", "r2_score"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	WriteError(&buf, errors.New("clean: something broke"))
	var rec ErrorRecord
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode error record: %v", err)
	}
	if rec.Error != "clean: something broke" {
		t.Errorf("error = %q", rec.Error)
	}
}
