package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Options controls loading behavior for delimited files.
type Options struct {
	// Delimiter for CSV. If 0, sniffs from the file extension (.tsv → tab).
	Delimiter rune
	// DecimalSeparator for numbers. If 0, auto-detect per value.
	DecimalSeparator rune
}

// DefaultOptions returns sensible loader defaults.
func DefaultOptions() Options {
	return Options{}
}

// Load reads a delimited file into a Table. The first row is the header;
// duplicate header names are rejected. Records with more fields than the
// header are an error; shorter records are padded with missing cells. A
// column is numeric iff it has at least one numeric cell and every
// non-missing cell parses as a number.
func Load(path string, opt Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file: no header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	ncol := len(header)
	if ncol == 0 {
		return nil, errors.New("empty header row")
	}

	t := &Table{Name: filepath.Base(path), Columns: make([]Column, ncol)}
	seen := make(map[string]bool, ncol)
	for i, h := range header {
		name := strings.TrimSpace(h)
		if seen[name] {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		seen[name] = true
		t.Columns[i] = Column{Name: name}
	}

	numCnt := make([]int, ncol)
	txtCnt := make([]int, ncol)
	row := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		if len(rec) > ncol {
			return nil, fmt.Errorf("row %d has %d fields, want %d", row, len(rec), ncol)
		}
		// Pad short records so every column stays row-aligned.
		if len(rec) < ncol {
			tmp := make([]string, ncol)
			copy(tmp, rec)
			rec = tmp
		}
		for j := 0; j < ncol; j++ {
			raw := strings.TrimSpace(rec[j])
			cell := Cell{Raw: raw}
			if isMissing(raw) {
				cell.Missing = true
			} else if v, ok := parseNumeric(raw, opt); ok {
				cell.Num = v
				numCnt[j]++
			} else {
				txtCnt[j]++
			}
			t.Columns[j].Cells = append(t.Columns[j].Cells, cell)
		}
	}

	for j := range t.Columns {
		if numCnt[j] > 0 && txtCnt[j] == 0 {
			t.Columns[j].Kind = KindNumeric
		} else {
			t.Columns[j].Kind = KindOther
		}
	}
	return t, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

// isMissing reports whether a trimmed cell counts as a missing value.
func isMissing(s string) bool {
	switch strings.ToLower(s) {
	case "", "na", "n/a", "nan", "null":
		return true
	}
	return false
}

// parseNumeric parses a cell as a float, tolerating percent signs, decimal
// commas, and thousands separators.
func parseNumeric(s string, opt Options) (float64, bool) {
	raw := strings.ReplaceAll(s, "%", "")
	raw = strings.ReplaceAll(raw, "\u00A0", " ")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	dec := opt.DecimalSeparator
	if dec == 0 {
		cpos := strings.LastIndex(raw, ",")
		dpos := strings.LastIndex(raw, ".")
		switch {
		case cpos >= 0 && dpos >= 0 && cpos > dpos:
			dec = ','
		case cpos >= 0 && dpos < 0 && !commaIsGrouping(raw, cpos):
			dec = ','
		default:
			dec = '.'
		}
	}
	for _, sep := range []rune{',', '.', ' '} {
		if sep != dec {
			raw = strings.ReplaceAll(raw, string(sep), "")
		}
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// commaIsGrouping reports whether the commas in a dot-free value read as
// thousands separators rather than a decimal comma: several commas can only
// be grouping, and a single comma followed by exactly three digits (with a
// non-zero integer part, so "0,500" stays a decimal) is grouping like
// "1,000".
func commaIsGrouping(raw string, cpos int) bool {
	if strings.Count(raw, ",") > 1 {
		return true
	}
	return len(raw)-cpos-1 == 3 && !strings.HasPrefix(raw, "0,") && !strings.HasPrefix(raw, "-0,")
}
