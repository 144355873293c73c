package pipeline

import "github.com/KaramelBytes/tabfit-cli/internal/table"

// minSamples is the smallest cleaned row count for which a train/test split
// is meaningful.
const minSamples = 10

// SelectColumns designates the last numeric column (in original file order)
// as the regression target and every preceding numeric column as a feature.
// No statistical selection is involved. Returns ErrInsufficientSamples if
// the cleaned table has fewer than minSamples rows.
func SelectColumns(t *table.Table) (X [][]float64, y []float64, featureNames []string, targetName string, err error) {
	rows := t.Rows()
	if rows < minSamples {
		return nil, nil, nil, "", ErrInsufficientSamples
	}

	nfeat := len(t.Columns) - 1
	target := t.Columns[nfeat]
	targetName = target.Name
	featureNames = make([]string, nfeat)
	for j := 0; j < nfeat; j++ {
		featureNames[j] = t.Columns[j].Name
	}

	X = make([][]float64, rows)
	y = make([]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, nfeat)
		for j := 0; j < nfeat; j++ {
			row[j] = t.Columns[j].Cells[i].Num
		}
		X[i] = row
		y[i] = target.Cells[i].Num
	}
	return X, y, featureNames, targetName, nil
}
