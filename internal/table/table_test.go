package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadKinds(t *testing.T) {
	path := writeFixture(t, "mixed.csv", []string{
		"id,name,score,note",
		"1,alice,10.5,ok",
		"2,bob,11.0,",
		"3,carol,9.5,fine",
	})
	tab, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := tab.Rows(); got != 3 {
		t.Fatalf("Rows = %d, want 3", got)
	}
	wantKinds := map[string]Kind{"id": KindNumeric, "name": KindOther, "score": KindNumeric, "note": KindOther}
	for _, c := range tab.Columns {
		if c.Kind != wantKinds[c.Name] {
			t.Errorf("column %s: kind %s, want %s", c.Name, c.Kind, wantKinds[c.Name])
		}
	}
	// Empty cell in "note" row 2 is missing.
	if !tab.Columns[3].Cells[1].Missing {
		t.Errorf("note[1] should be missing")
	}
}

func TestLoadNumericStrictness(t *testing.T) {
	// One stray string makes the whole column non-numeric.
	path := writeFixture(t, "stray.csv", []string{
		"a,b",
		"1,2",
		"oops,3",
		"2,4",
	})
	tab, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tab.Columns[0].Kind != KindOther {
		t.Errorf("column a: kind %s, want other", tab.Columns[0].Kind)
	}
	if tab.Columns[1].Kind != KindNumeric {
		t.Errorf("column b: kind %s, want numeric", tab.Columns[1].Kind)
	}
}

func TestLoadMissingTokens(t *testing.T) {
	path := writeFixture(t, "na.csv", []string{
		"x,y",
		"1,2",
		"NA,3",
		"nan,4",
		"null,5",
		"N/A,6",
	})
	tab, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Missing tokens do not demote the column to "other".
	if tab.Columns[0].Kind != KindNumeric {
		t.Fatalf("column x: kind %s, want numeric", tab.Columns[0].Kind)
	}
	var miss int
	for _, c := range tab.Columns[0].Cells {
		if c.Missing {
			miss++
		}
	}
	if miss != 4 {
		t.Errorf("missing count = %d, want 4", miss)
	}
}

func TestLoadTSVSniff(t *testing.T) {
	path := writeFixture(t, "data.tsv", []string{
		"a\tb",
		"1\t2",
		"3\t4",
	})
	tab, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tab.Columns) != 2 {
		t.Fatalf("columns = %d, want 2", len(tab.Columns))
	}
	if tab.Columns[1].Cells[0].Num != 2 {
		t.Errorf("b[0] = %v, want 2", tab.Columns[1].Cells[0].Num)
	}
}

func TestLoadRaggedRows(t *testing.T) {
	// A record with more fields than the header is an error.
	long := writeFixture(t, "long.csv", []string{
		"a,b",
		"1,2",
		"3,4,5",
	})
	if _, err := Load(long, DefaultOptions()); err == nil {
		t.Fatalf("expected error for over-long row")
	}

	// A short record is padded with missing cells.
	short := writeFixture(t, "short.csv", []string{
		"a,b",
		"1,2",
		"3",
	})
	tab, err := Load(short, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !tab.Columns[1].Cells[1].Missing {
		t.Errorf("b[1] should be missing after padding")
	}
}

func TestLoadDuplicateHeader(t *testing.T) {
	path := writeFixture(t, "dup.csv", []string{
		"a,a",
		"1,2",
	})
	if _, err := Load(path, DefaultOptions()); err == nil {
		t.Fatalf("expected error for duplicate column names")
	}
}

func TestParseNumericLocales(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.5", 1.5, true},
		{"0,5", 0.5, true},
		{"0,500", 0.5, true},
		{"1.000,5", 1000.5, true},
		{"1,000", 1000, true},
		{"1,000,000", 1000000, true},
		{"12,34", 12.34, true},
		{"50%", 50, true},
		{"1e3", 1000, true},
		{"abc", 0, false},
	}
	for _, c := range cases {
		got, ok := parseNumeric(c.in, DefaultOptions())
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("parseNumeric(%q) = %v,%v want %v,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestSummarize(t *testing.T) {
	path := writeFixture(t, "sum.csv", []string{
		"v,label",
		"1,a",
		"2,b",
		"3,",
	})
	tab, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sums := tab.Summarize()
	if sums[0].Mean != 2 {
		t.Errorf("mean = %v, want 2", sums[0].Mean)
	}
	if sums[0].Min != 1 || sums[0].Max != 3 {
		t.Errorf("min/max = %v/%v, want 1/3", sums[0].Min, sums[0].Max)
	}
	if sums[1].Missing != 1 {
		t.Errorf("label missing = %d, want 1", sums[1].Missing)
	}
	txt := tab.SummaryText()
	if !strings.Contains(txt, "[SCHEMA]") || !strings.Contains(txt, "v: numeric") {
		t.Errorf("summary text missing expected sections:\n%s", txt)
	}
}
