package signal

import "lifelens/domain/core"

// WearableDay is one day of watch-derived metrics. Every metric is nullable:
// a nil field means the device recorded nothing for that day, which must stay
// distinguishable from a recorded zero.
type WearableDay struct {
	Date             core.DateKey `json:"date"`
	SleepTotalMin    *float64     `json:"sleep_total_min,omitempty"`
	SleepEfficiency  *float64     `json:"sleep_efficiency,omitempty"`
	HRResting        *float64     `json:"hr_resting,omitempty"`
	ExerciseMin      *float64     `json:"exercise_min,omitempty"`
	Steps            *float64     `json:"steps,omitempty"`
	ActiveEnergyKcal *float64     `json:"active_energy_kcal,omitempty"`
}

// VideoDay is one day of video-derived mood scoring.
type VideoDay struct {
	Date           core.DateKey `json:"date"`
	SentimentScore float64      `json:"sentiment_score"` // -1..1
	StressScore    float64      `json:"stress_score"`    // 0..10
}
