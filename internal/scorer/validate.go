package scorer

import "math"

// Validate checks the preconditions of Score without computing anything.
func Validate(matrix [][]float64, weights []float64, impacts []Impact) error {
	if len(matrix) == 0 {
		return invalidf("matrix has no rows")
	}
	cols := len(matrix[0])
	if cols == 0 {
		return invalidf("matrix has no columns")
	}
	for r, row := range matrix {
		if len(row) != cols {
			return invalidf("row %d has %d values, expected %d", r, len(row), cols)
		}
	}
	if len(weights) != cols {
		return invalidf("got %d weights for %d criteria", len(weights), cols)
	}
	if len(impacts) != cols {
		return invalidf("got %d impacts for %d criteria", len(impacts), cols)
	}

	for c, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return invalidf("weight %d is not a finite number", c)
		}
		if w <= 0 {
			return invalidf("weight %d must be > 0, got %g", c, w)
		}
	}
	for c, imp := range impacts {
		if !imp.Valid() {
			return invalidf("impact %d is %s, want benefit or cost", c, imp)
		}
	}
	for r, row := range matrix {
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return invalidf("value at row %d, column %d is not finite", r, c)
			}
		}
	}
	return nil
}
