package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRank(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   []float64
	}{
		{"empty", nil, []float64{}},
		{"single", []float64{0.3}, []float64{1}},
		{"distinct", []float64{0.2, 0.9, 0.5}, []float64{3, 1, 2}},
		{"tied best", []float64{0.8, 0.8, 0.1}, []float64{1.5, 1.5, 3}},
		{"tied middle", []float64{0.9, 0.4, 0.4, 0.4, 0.1}, []float64{1, 3, 3, 3, 5}},
		{"all equal", []float64{0, 0, 0, 0}, []float64{2.5, 2.5, 2.5, 2.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageRank(tt.scores))
		})
	}
}
