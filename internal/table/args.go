package table

import (
	"strconv"
	"strings"

	"github.com/sells-group/topsis/internal/scorer"
)

// ParseWeights parses a comma-separated list of numbers such as "1,1,2,0.5".
func ParseWeights(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, adapterf(nil, "invalid weights format: empty list")
	}
	parts := strings.Split(s, ",")
	weights := make([]float64, len(parts))
	for i, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, adapterf(nil, "invalid weights format: %q is not a number (weights must be numeric values separated by commas)", p)
		}
		weights[i] = w
	}
	return weights, nil
}

// ParseImpacts parses a comma-separated list of "+" and "-" signs.
func ParseImpacts(s string) ([]scorer.Impact, error) {
	if strings.TrimSpace(s) == "" {
		return nil, adapterf(nil, "invalid impacts format: empty list")
	}
	parts := strings.Split(s, ",")
	impacts := make([]scorer.Impact, len(parts))
	for i, p := range parts {
		switch strings.TrimSpace(p) {
		case "+":
			impacts[i] = scorer.Benefit
		case "-":
			impacts[i] = scorer.Cost
		default:
			return nil, adapterf(nil, "invalid impacts format: %q must be + or -", p)
		}
	}
	return impacts, nil
}
