package stats

import "math"

// madScale rescales a MAD-based deviation to approximate a standard-normal z.
const madScale = 0.6745

// minCleanSample is the smallest clean sample a robust z-series is computed
// from. Below it the whole series reads as "not unusual" rather than erroring.
const minCleanSample = 5

// RobustZ computes the MAD-convention z-score of value against a sample
// median and MAD. A zero MAD yields 0; callers needing the classic-z fallback
// use RobustZSeries, which applies it sample-wide.
func RobustZ(value, med, mad float64) float64 {
	if mad == 0 {
		return 0
	}
	return madScale * (value - med) / mad
}

// RobustZSeries converts a nullable series to robust z-scores. Nil positions
// stay nil in the output: "no data" must never read as "value equals the
// median". The median and MAD come from the clean (non-nil, non-NaN) sample
// only. With fewer than minCleanSample clean points every non-nil output is
// 0; with MAD 0 the classic (mean/stddev) z-score is used, and with stddev
// also 0 every non-nil output is 0.
func RobustZSeries(values []*float64) []*float64 {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if v != nil && !math.IsNaN(*v) {
			clean = append(clean, *v)
		}
	}

	if len(clean) < minCleanSample {
		return mapSeries(values, func(float64) float64 { return 0 })
	}

	med := Median(clean)
	mad := MAD(clean, med)

	if mad == 0 {
		m := Mean(clean)
		sd := StdDev(clean)
		if sd == 0 {
			return mapSeries(values, func(float64) float64 { return 0 })
		}
		return mapSeries(values, func(v float64) float64 { return (v - m) / sd })
	}

	return mapSeries(values, func(v float64) float64 { return RobustZ(v, med, mad) })
}

// mapSeries applies f to every non-nil element, preserving nil positions.
func mapSeries(values []*float64, f func(float64) float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		z := f(*v)
		out[i] = &z
	}
	return out
}
