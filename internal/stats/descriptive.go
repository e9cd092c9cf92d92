// Package stats holds the numeric primitives the insight pipeline is built
// on. Every function here is total: empty or degenerate input produces a
// defined sentinel (0, or a null-preserving series), never a panic or error.
// Real usage routinely has partial data, so the pipeline must always produce
// a best-effort result.
package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
)

// Mean returns the arithmetic mean, or 0 for empty input.
func Mean(xs []float64) float64 {
	m, err := mstats.Mean(xs)
	if err != nil {
		return 0
	}
	return m
}

// Median returns the middle sorted value, averaging the two middle values for
// even-length input. Empty input yields 0.
func Median(xs []float64) float64 {
	m, err := mstats.Median(xs)
	if err != nil {
		return 0
	}
	return m
}

// MAD returns the median of absolute deviations from med. It is 0 when every
// value equals med.
func MAD(xs []float64, med float64) float64 {
	dev := make([]float64, len(xs))
	for i, v := range xs {
		dev[i] = math.Abs(v - med)
	}
	return Median(dev)
}

// StdDev returns the population standard deviation, or 0 for empty input.
func StdDev(xs []float64) float64 {
	sd, err := mstats.StandardDeviationPopulation(xs)
	if err != nil {
		return 0
	}
	return sd
}
