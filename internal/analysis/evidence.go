package analysis

import (
	"math"

	"lifelens/domain/core"
	"lifelens/domain/timeline"
)

// Evidence payload bounds. The payload is the only object that crosses the
// process boundary to the explanation collaborator; the raw dataset never
// does.
const (
	DefaultRecentDays     = 14
	DefaultMaxAnomalyDays = 6
)

// PackageConfig bounds the evidence payload.
type PackageConfig struct {
	RecentDays     int
	MaxAnomalyDays int
}

// DefaultPackageConfig returns the standard payload bounds.
func DefaultPackageConfig() PackageConfig {
	return PackageConfig{RecentDays: DefaultRecentDays, MaxAnomalyDays: DefaultMaxAnomalyDays}
}

// RecentDay is one merged day trimmed and rounded for the payload tail.
type RecentDay struct {
	Date             core.DateKey `json:"date"`
	Needs            float64      `json:"needs"`
	Wants            float64      `json:"wants"`
	TotalSpend       float64      `json:"total_spend"`
	SleepHours       *float64     `json:"sleep_hours"`
	ExerciseMin      *float64     `json:"exercise_min"`
	RestingHR        *float64     `json:"resting_hr"`
	VideoStress      *float64     `json:"video_stress"`
	VideoSentiment   *float64     `json:"video_sentiment"`
	EmotionStress    *float64     `json:"emotion_stress"`
	EmotionSentiment *float64     `json:"emotion_sentiment"`
}

// EvidenceAnomalyDay is a compact record of one top-ranked anomaly day: the
// raw same-day values only, no derived tags.
type EvidenceAnomalyDay struct {
	Date             core.DateKey `json:"date"`
	Wants            float64      `json:"wants"`
	TotalSpend       float64      `json:"total_spend"`
	ZWants           *float64     `json:"z_wants"`
	SleepHours       *float64     `json:"sleep_hours"`
	ExerciseMin      *float64     `json:"exercise_min"`
	RestingHR        *float64     `json:"resting_hr"`
	VideoStress      *float64     `json:"video_stress"`
	VideoSentiment   *float64     `json:"video_sentiment"`
	EmotionStress    *float64     `json:"emotion_stress"`
	EmotionSentiment *float64     `json:"emotion_sentiment"`
}

// Evidence is the bounded summary handed to the explanation collaborator.
type Evidence struct {
	ID          core.ID              `json:"id"`
	GeneratedAt core.Timestamp       `json:"generated_at"`
	Cards       []Card               `json:"cards"`
	RecentDays  []RecentDay          `json:"recent_days"`
	AnomalyDays []EvidenceAnomalyDay `json:"anomaly_days"`
}

// PackageEvidence truncates the merged series to the recent-day window
// (monetary and sleep fields rounded to 2 decimals) and attaches the top
// anomaly days under the same ranking the detector uses.
func PackageEvidence(rows []timeline.MergedDay, cards []Card, flags Flags, cfg PackageConfig) Evidence {
	start := len(rows) - cfg.RecentDays
	if start < 0 {
		start = 0
	}
	recent := make([]RecentDay, 0, len(rows)-start)
	for _, r := range rows[start:] {
		recent = append(recent, RecentDay{
			Date:             r.Date,
			Needs:            round2(r.Needs),
			Wants:            round2(r.Wants),
			TotalSpend:       round2(r.TotalSpend),
			SleepHours:       round2Ptr(r.SleepHours),
			ExerciseMin:      r.ExerciseMin,
			RestingHR:        r.RestingHR,
			VideoStress:      r.VideoStress,
			VideoSentiment:   r.VideoSentiment,
			EmotionStress:    r.EmotionStress,
			EmotionSentiment: r.EmotionSentiment,
		})
	}

	picked := TopKByAbsZ(flags.ZWants, cfg.MaxAnomalyDays)
	anomalyDays := make([]EvidenceAnomalyDay, 0, len(picked))
	for _, i := range picked {
		r := rows[i]
		anomalyDays = append(anomalyDays, EvidenceAnomalyDay{
			Date:             r.Date,
			Wants:            r.Wants,
			TotalSpend:       r.TotalSpend,
			ZWants:           flags.ZWants[i],
			SleepHours:       r.SleepHours,
			ExerciseMin:      r.ExerciseMin,
			RestingHR:        r.RestingHR,
			VideoStress:      r.VideoStress,
			VideoSentiment:   r.VideoSentiment,
			EmotionStress:    r.EmotionStress,
			EmotionSentiment: r.EmotionSentiment,
		})
	}

	return Evidence{
		ID:          core.NewID(),
		GeneratedAt: core.Now(),
		Cards:       cards,
		RecentDays:  recent,
		AnomalyDays: anomalyDays,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := round2(*v)
	return &r
}
