// Package scorer ranks alternatives with TOPSIS: each criterion column is
// L2-normalized and weighted, ideal best and worst points are taken per
// column, and every row is scored by its relative closeness to the ideal.
package scorer

import "math"

// Result holds the output of Score. Every slice indexed by row keeps the
// input row order.
type Result struct {
	Scores     []float64 `json:"scores"`
	Ranks      []float64 `json:"ranks"`
	IdealBest  []float64 `json:"ideal_best"`
	IdealWorst []float64 `json:"ideal_worst"`
	SPlus      []float64 `json:"s_plus"`
	SMinus     []float64 `json:"s_minus"`
}

// Best returns the index of the row ranked first. Ties resolve to the lowest
// row index.
func (r *Result) Best() int {
	best := 0
	for i, rank := range r.Ranks {
		if rank < r.Ranks[best] {
			best = i
		}
	}
	return best
}

// Score runs the full pipeline. The inputs are not modified.
func Score(matrix [][]float64, weights []float64, impacts []Impact) (*Result, error) {
	if err := Validate(matrix, weights, impacts); err != nil {
		return nil, err
	}

	v := Weight(Normalize(matrix), weights)
	best, worst := IdealPoints(v, impacts)
	splus, sminus := Separations(v, best, worst)
	scores := Closeness(splus, sminus)

	return &Result{
		Scores:     scores,
		Ranks:      AverageRank(scores),
		IdealBest:  best,
		IdealWorst: worst,
		SPlus:      splus,
		SMinus:     sminus,
	}, nil
}

// Normalize divides each column by its Euclidean norm. A column whose norm is
// zero stays all zeros.
func Normalize(m [][]float64) [][]float64 {
	rows, cols := len(m), len(m[0])
	out := newMatrix(rows, cols)
	for c := 0; c < cols; c++ {
		var sum float64
		for r := 0; r < rows; r++ {
			sum += m[r][c] * m[r][c]
		}
		norm := math.Sqrt(sum)
		if norm == 0 {
			continue
		}
		for r := 0; r < rows; r++ {
			out[r][c] = m[r][c] / norm
		}
	}
	return out
}

// Weight scales column c of m by weights[c].
func Weight(m [][]float64, weights []float64) [][]float64 {
	out := newMatrix(len(m), len(weights))
	for r := range m {
		for c, w := range weights {
			out[r][c] = m[r][c] * w
		}
	}
	return out
}

// IdealPoints returns the ideal best and ideal worst vectors of the weighted
// matrix. Benefit columns take best = max, worst = min; cost columns swap.
func IdealPoints(v [][]float64, impacts []Impact) (best, worst []float64) {
	best = make([]float64, len(impacts))
	worst = make([]float64, len(impacts))
	for c, imp := range impacts {
		lo, hi := v[0][c], v[0][c]
		for r := 1; r < len(v); r++ {
			lo = math.Min(lo, v[r][c])
			hi = math.Max(hi, v[r][c])
		}
		if imp == Cost {
			best[c], worst[c] = lo, hi
		} else {
			best[c], worst[c] = hi, lo
		}
	}
	return best, worst
}

// Separations returns the Euclidean distance of every row to best (S+) and
// to worst (S-).
func Separations(v [][]float64, best, worst []float64) (splus, sminus []float64) {
	splus = make([]float64, len(v))
	sminus = make([]float64, len(v))
	for r, row := range v {
		var dp, dm float64
		for c, x := range row {
			dp += (best[c] - x) * (best[c] - x)
			dm += (worst[c] - x) * (worst[c] - x)
		}
		splus[r] = math.Sqrt(dp)
		sminus[r] = math.Sqrt(dm)
	}
	return splus, sminus
}

// Closeness computes S- / (S+ + S-) per row. A row at distance zero from both
// ideal points scores 0.
func Closeness(splus, sminus []float64) []float64 {
	scores := make([]float64, len(splus))
	for r := range splus {
		d := splus[r] + sminus[r]
		if d == 0 {
			continue
		}
		scores[r] = sminus[r] / d
	}
	return scores
}

func newMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for r := range m {
		m[r] = make([]float64, cols)
	}
	return m
}
