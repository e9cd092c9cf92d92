package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Pearson computes the product-moment correlation over the overlapping prefix
// of x and y (n = min(len(x), len(y))). Degenerate input (fewer than two
// pairs, or a zero-variance series) yields 0 rather than NaN.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n < 2 {
		return 0
	}
	r := stat.Correlation(x[:n], y[:n], nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// Rank assigns fractional (midrank) 1-based ranks: tied values all receive
// the average of the positions they occupy, e.g. a three-way tie over
// positions 3,4,5 ranks each at 4. This is the standard tie handling for
// Spearman and must hold exactly.
func Rank(xs []float64) []float64 {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	ranks := make([]float64, len(xs))
	i := 0
	for i < len(idx) {
		j := i
		for j+1 < len(idx) && xs[idx[j+1]] == xs[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// Spearman is the Pearson correlation of the rank-transformed series,
// capturing monotonic rather than strictly linear relationships.
func Spearman(x, y []float64) float64 {
	return Pearson(Rank(x), Rank(y))
}

// FormatR renders a correlation with an explicit sign and two decimals,
// e.g. "+0.42" or "-0.07".
func FormatR(r float64) string {
	return fmt.Sprintf("%+.2f", r)
}
