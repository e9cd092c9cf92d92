package analysis

import "lifelens/domain/timeline"

// highStressFloor splits days into high-stress and normal groups on the raw
// video stress score (0-10 scale).
const highStressFloor = 6.0

// StressSplit compares average wants spending on high-stress days against the
// rest. Days without a video stress score belong to neither group.
type StressSplit struct {
	HighStressDays int      `json:"high_stress_days"`
	OtherDays      int      `json:"other_days"`
	AvgWantsHigh   *float64 `json:"avg_wants_high"`
	AvgWantsOther  *float64 `json:"avg_wants_other"`
	DifferencePct  *float64 `json:"difference_pct"`
}

// ComputeStressSplit averages wants spending on days with video stress at or
// above the high-stress floor versus days below it. Averages are nil when a
// group is empty, and the percentage difference is nil unless both averages
// exist and the baseline is nonzero.
func ComputeStressSplit(rows []timeline.MergedDay) StressSplit {
	var highSum, otherSum float64
	var s StressSplit
	for _, r := range rows {
		if r.VideoStress == nil {
			continue
		}
		if *r.VideoStress >= highStressFloor {
			s.HighStressDays++
			highSum += r.Wants
		} else {
			s.OtherDays++
			otherSum += r.Wants
		}
	}
	if s.HighStressDays > 0 {
		avg := highSum / float64(s.HighStressDays)
		s.AvgWantsHigh = &avg
	}
	if s.OtherDays > 0 {
		avg := otherSum / float64(s.OtherDays)
		s.AvgWantsOther = &avg
	}
	if s.AvgWantsHigh != nil && s.AvgWantsOther != nil && *s.AvgWantsOther != 0 {
		pct := (*s.AvgWantsHigh - *s.AvgWantsOther) / *s.AvgWantsOther * 100
		s.DifferencePct = &pct
	}
	return s
}
