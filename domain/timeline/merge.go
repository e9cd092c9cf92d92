package timeline

import (
	"lifelens/domain/core"
	"lifelens/domain/signal"
)

// MergedDay is the unified per-day record: the spending aggregate joined with
// whatever wearable, video, and check-in data exists for that date. A nil
// pointer means the source domain has no record for the day; it is never a
// synthesized zero.
type MergedDay struct {
	DailyAggregate

	SleepHours       *float64 `json:"sleep_hours"`
	SleepEfficiency  *float64 `json:"sleep_efficiency"`
	RestingHR        *float64 `json:"resting_hr"`
	ExerciseMin      *float64 `json:"exercise_min"`
	Steps            *float64 `json:"steps"`
	ActiveEnergyKcal *float64 `json:"active_energy_kcal"`

	VideoSentiment *float64 `json:"video_sentiment"`
	VideoStress    *float64 `json:"video_stress"`

	EmotionStress    *float64 `json:"emotion_stress"`
	EmotionSentiment *float64 `json:"emotion_sentiment"`
}

// Merge left-joins the daily aggregates with the three auxiliary domains.
// The aggregate's date set is authoritative: merge never adds or drops dates.
// Lookup maps are built once up front and not mutated afterwards.
func Merge(daily []DailyAggregate, wearable []signal.WearableDay, video []signal.VideoDay, checkins []signal.Checkin) []MergedDay {
	wearByDate := make(map[core.DateKey]signal.WearableDay, len(wearable))
	for _, w := range wearable {
		wearByDate[w.Date] = w
	}
	videoByDate := make(map[core.DateKey]signal.VideoDay, len(video))
	for _, v := range video {
		videoByDate[v.Date] = v
	}
	checkinByDate := make(map[core.DateKey]signal.Checkin, len(checkins))
	for _, c := range checkins {
		checkinByDate[c.Date] = c
	}

	out := make([]MergedDay, 0, len(daily))
	for _, d := range daily {
		row := MergedDay{DailyAggregate: d}

		if w, ok := wearByDate[d.Date]; ok {
			if w.SleepTotalMin != nil {
				row.SleepHours = ptr(*w.SleepTotalMin / 60)
			}
			row.SleepEfficiency = w.SleepEfficiency
			row.RestingHR = w.HRResting
			row.ExerciseMin = w.ExerciseMin
			row.Steps = w.Steps
			row.ActiveEnergyKcal = w.ActiveEnergyKcal
		}

		if v, ok := videoByDate[d.Date]; ok {
			row.VideoSentiment = ptr(v.SentimentScore)
			row.VideoStress = ptr(v.StressScore)
		}

		if c, ok := checkinByDate[d.Date]; ok {
			row.EmotionStress = ptr(c.Stress)
			if c.Emotion1 != "" {
				row.EmotionSentiment = ptr(signal.EmotionSentiment(c.Emotion1))
			}
		}

		out = append(out, row)
	}
	return out
}

func ptr(v float64) *float64 { return &v }
