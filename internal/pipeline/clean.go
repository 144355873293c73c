package pipeline

import "github.com/KaramelBytes/tabfit-cli/internal/table"

// Clean drops every row containing a missing value in any column (numeric or
// not), then keeps only numeric columns. The input table is not mutated.
// Returns ErrInsufficientColumns if fewer than 2 numeric columns remain.
func Clean(t *table.Table) (*table.Table, error) {
	rows := t.Rows()
	keepRow := make([]bool, rows)
	for i := range keepRow {
		keepRow[i] = true
	}
	for _, c := range t.Columns {
		for i, cell := range c.Cells {
			if cell.Missing {
				keepRow[i] = false
			}
		}
	}

	numeric := t.NumericColumns()
	if len(numeric) < 2 {
		return nil, ErrInsufficientColumns
	}

	out := &table.Table{Name: t.Name, Columns: make([]table.Column, 0, len(numeric))}
	for _, j := range numeric {
		src := t.Columns[j]
		col := table.Column{Name: src.Name, Kind: table.KindNumeric}
		for i, cell := range src.Cells {
			if keepRow[i] {
				col.Cells = append(col.Cells, cell)
			}
		}
		out.Columns = append(out.Columns, col)
	}
	return out, nil
}
