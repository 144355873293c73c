// Package table holds the in-memory tabular model: named, typed columns of
// equal length, with column kinds decided once at load time.
package table

import (
	"fmt"
	"math"
	"strings"
)

// Kind tags a column as usable for regression or not.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindOther   Kind = "other"
)

// Cell is one value of a column. Num is meaningful only when the owning
// column is numeric and Missing is false.
type Cell struct {
	Raw     string
	Num     float64
	Missing bool
}

// Column is an ordered sequence of cells under one header name.
type Column struct {
	Name  string
	Kind  Kind
	Cells []Cell
}

// Table is an ordered set of columns, all the same length.
type Table struct {
	Name    string
	Columns []Column
}

// Rows returns the row count (0 for an empty table).
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// NumericColumns returns the indices of numeric columns in original order.
func (t *Table) NumericColumns() []int {
	var idx []int
	for i, c := range t.Columns {
		if c.Kind == KindNumeric {
			idx = append(idx, i)
		}
	}
	return idx
}

// ColumnSummary captures per-column stats for the inspect report.
type ColumnSummary struct {
	Name    string
	Kind    Kind
	NonNull int
	Missing int
	Min     float64
	Max     float64
	Mean    float64
	Std     float64
}

// Summarize computes per-column statistics. Numeric stats use Welford's
// update so a single pass suffices.
func (t *Table) Summarize() []ColumnSummary {
	out := make([]ColumnSummary, 0, len(t.Columns))
	for _, c := range t.Columns {
		s := ColumnSummary{Name: c.Name, Kind: c.Kind, Min: math.Inf(1), Max: math.Inf(-1)}
		var n int
		var mean, m2 float64
		for _, cell := range c.Cells {
			if cell.Missing {
				s.Missing++
				continue
			}
			s.NonNull++
			if c.Kind != KindNumeric {
				continue
			}
			n++
			if cell.Num < s.Min {
				s.Min = cell.Num
			}
			if cell.Num > s.Max {
				s.Max = cell.Num
			}
			delta := cell.Num - mean
			mean += delta / float64(n)
			m2 += delta * (cell.Num - mean)
		}
		if c.Kind == KindNumeric && n > 0 {
			s.Mean = mean
			if n > 1 {
				s.Std = math.Sqrt(m2 / float64(n-1))
			}
		} else {
			s.Min, s.Max = 0, 0
		}
		out = append(out, s)
	}
	return out
}

// SummaryText renders a compact human-readable schema report.
func (t *Table) SummaryText() string {
	var b strings.Builder
	b.WriteString("[DATASET]\n")
	if t.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", t.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", t.Rows()))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(t.Columns)))
	b.WriteString("[SCHEMA]\n")
	for _, s := range t.Summarize() {
		total := s.NonNull + s.Missing
		missPct := 0.0
		if total > 0 {
			missPct = float64(s.Missing) * 100.0 / float64(total)
		}
		b.WriteString(fmt.Sprintf("- %s: %s (non-null %d, missing %.1f%%)", s.Name, s.Kind, s.NonNull, missPct))
		if s.Kind == KindNumeric && s.NonNull > 0 {
			b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, std %.4g", s.Min, s.Max, s.Mean, s.Std))
		}
		b.WriteString("\n")
	}
	return b.String()
}
