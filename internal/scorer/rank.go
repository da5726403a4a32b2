package scorer

import "sort"

// AverageRank ranks scores in descending order starting at 1. Equal scores
// share the mean of the positions they occupy, so two rows tied for first
// both get 1.5.
func AverageRank(scores []float64) []float64 {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	ranks := make([]float64, len(scores))
	for i := 0; i < len(idx); {
		j := i + 1
		for j < len(idx) && scores[idx[j]] == scores[idx[i]] {
			j++
		}
		// positions i..j-1 are 1-based i+1..j
		avg := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		i = j
	}
	return ranks
}
