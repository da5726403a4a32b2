package table

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Encoder maps the labels of a non-numeric column to numeric codes.
type Encoder interface {
	Encode(labels []string) ([]float64, error)
}

// LabelEncoder assigns codes 0..k-1 to the k distinct labels of a column in
// sorted order. Labels are compared after Unicode NFC normalization.
type LabelEncoder struct{}

// Encode implements Encoder.
func (LabelEncoder) Encode(labels []string) ([]float64, error) {
	normalized := make([]string, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for i, l := range labels {
		n := norm.NFC.String(l)
		normalized[i] = n
		seen[n] = struct{}{}
	}

	classes := make([]string, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	codes := make(map[string]float64, len(classes))
	for i, c := range classes {
		codes[c] = float64(i)
	}

	out := make([]float64, len(labels))
	for i, n := range normalized {
		out[i] = codes[n]
	}
	return out, nil
}

// Matrix converts the criterion columns (1..n) of t into a numeric matrix.
// A column whose cells all parse as numbers is used as-is; blank cells in such
// a column become NaN so the scorer rejects them. Any other column is handed
// to enc. The names of encoded columns are returned. A nil enc makes
// non-numeric columns an error.
func (t *Table) Matrix(enc Encoder) ([][]float64, []string, error) {
	cols := len(t.Header) - 1
	if cols < 1 {
		return nil, nil, adapterf(nil, "table has no criterion columns")
	}

	m := make([][]float64, len(t.Rows))
	for r := range m {
		m[r] = make([]float64, cols)
	}

	var encoded []string
	for c := 0; c < cols; c++ {
		name := t.Header[c+1]
		values, ok := parseNumericColumn(t.Rows, c+1)
		if !ok {
			if enc == nil {
				return nil, nil, adapterf(nil, "column %q is not numeric", name)
			}
			labels := make([]string, len(t.Rows))
			for r, row := range t.Rows {
				labels[r] = row[c+1]
			}
			var err error
			values, err = enc.Encode(labels)
			if err != nil {
				return nil, nil, adapterf(err, "encode column %q", name)
			}
			if len(values) != len(t.Rows) {
				return nil, nil, adapterf(nil, "encoder returned %d codes for %d rows in column %q", len(values), len(t.Rows), name)
			}
			encoded = append(encoded, name)
		}
		for r := range m {
			m[r][c] = values[r]
		}
	}
	return m, encoded, nil
}

// parseNumericColumn parses column c of rows. It reports false when any
// non-blank cell is not a number or when every cell is blank.
func parseNumericColumn(rows [][]string, c int) ([]float64, bool) {
	values := make([]float64, len(rows))
	blank := 0
	for r, row := range rows {
		s := strings.TrimSpace(row[c])
		if s == "" {
			values[r] = math.NaN()
			blank++
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		values[r] = v
	}
	return values, blank < len(rows)
}
