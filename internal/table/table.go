// Package table reads decision tables from CSV and XLSX sources, turns their
// criterion columns into a numeric matrix, and writes the ranked result back
// out with Topsis_Score and Rank columns appended.
package table

import (
	"strconv"

	"github.com/sells-group/topsis/internal/scorer"
)

// Output column names appended by WithResults.
const (
	ScoreColumn = "Topsis_Score"
	RankColumn  = "Rank"
)

// MinColumns is the smallest accepted table width: an identifier column plus
// at least two criteria.
const MinColumns = 3

// Table is a header plus string rows. Column 0 identifies the alternative and
// is never scored.
type Table struct {
	Header []string
	Rows   [][]string
}

// Criteria returns the names of the scored columns.
func (t *Table) Criteria() []string {
	if len(t.Header) == 0 {
		return nil
	}
	return t.Header[1:]
}

// Validate checks the table shape.
func (t *Table) Validate() error {
	if len(t.Header) < MinColumns {
		return adapterf(nil, "input file must contain three or more columns, got %d", len(t.Header))
	}
	if len(t.Rows) == 0 {
		return adapterf(nil, "input file has no data rows")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return adapterf(nil, "row %d has %d fields, header has %d", i+1, len(row), len(t.Header))
		}
	}
	return nil
}

// WithResults returns a copy of t with score and rank columns appended. The
// original cells are copied untouched. precision is the number of decimals
// for scores; -1 writes the shortest exact form.
func (t *Table) WithResults(res *scorer.Result, precision int) (*Table, error) {
	if len(res.Scores) != len(t.Rows) || len(res.Ranks) != len(t.Rows) {
		return nil, adapterf(nil, "got %d results for %d rows", len(res.Scores), len(t.Rows))
	}

	out := &Table{
		Header: append(append([]string{}, t.Header...), ScoreColumn, RankColumn),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		r := make([]string, 0, len(row)+2)
		r = append(r, row...)
		r = append(r, FormatScore(res.Scores[i], precision), FormatRank(res.Ranks[i]))
		out.Rows[i] = r
	}
	return out, nil
}

// FormatScore renders a score with the given number of decimals.
func FormatScore(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// FormatRank renders whole ranks without a decimal point and tied ranks as
// decimals, e.g. "2" and "1.5".
func FormatRank(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
