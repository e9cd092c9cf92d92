// Package analysis computes the insight artifacts the dashboard and the
// explanation collaborator consume: the fixed correlation card list, the
// anomaly bundle, and the bounded evidence payload.
package analysis

import (
	"fmt"
	"math"

	"lifelens/domain/timeline"
	"lifelens/internal/stats"
)

// CardKind tags each correlation card so consumers and tests can key on
// structure instead of display text.
type CardKind string

const (
	CardSleepLagWants         CardKind = "sleep_lag_wants"
	CardExerciseWants         CardKind = "exercise_wants"
	CardRestingHRWants        CardKind = "resting_hr_wants"
	CardEmotionStressWants    CardKind = "emotion_stress_wants"
	CardEmotionSentimentWants CardKind = "emotion_sentiment_wants"
	CardVideoStressWants      CardKind = "video_stress_wants"
	CardVideoSentimentWants   CardKind = "video_sentiment_wants"
	CardWantsShare            CardKind = "wants_share"
	CardTotalSpend            CardKind = "total_spend"
	CardDataQuality           CardKind = "data_quality"
)

// Card is one named statistic on the dashboard. Ephemeral, recomputed per
// request.
type Card struct {
	Kind  CardKind `json:"kind"`
	Label string   `json:"label"`
	Value string   `json:"value"`
	Note  string   `json:"note"`
	N     int      `json:"n,omitempty"`
}

// ComputeCards builds the correlation card list for the merged series. The
// order is fixed and part of the contract: the dashboard renders cards
// positionally and must stay stable across refreshes.
func ComputeCards(rows []timeline.MergedDay) []Card {
	var totalSpend, totalWants float64
	for _, r := range rows {
		totalSpend += r.TotalSpend
		totalWants += r.Wants
	}
	wantsShare := 0.0
	if totalSpend > 0 {
		wantsShare = totalWants / totalSpend
	}

	rEx, nEx := corrWithWants(rows, func(r timeline.MergedDay) *float64 { return r.ExerciseMin })
	rRest, nRest := corrWithWants(rows, func(r timeline.MergedDay) *float64 { return r.RestingHR })
	rSent, nSent := corrWithWants(rows, func(r timeline.MergedDay) *float64 { return r.VideoSentiment })
	rStress, nStress := corrWithWants(rows, func(r timeline.MergedDay) *float64 { return r.VideoStress })
	rEmoSent, nEmoSent := corrWithWants(rows, func(r timeline.MergedDay) *float64 { return r.EmotionSentiment })
	rEmoStress, nEmoStress := corrWithWants(rows, func(r timeline.MergedDay) *float64 { return r.EmotionStress })
	rSleepLag, nSleepLag := sleepLagWants(rows)

	return []Card{
		{Kind: CardSleepLagWants, Label: "Sleep → Wants (next day)", Value: "r " + stats.FormatR(rSleepLag), Note: fmt.Sprintf("Sleep(t) vs Wants(t+1), n=%d", nSleepLag), N: nSleepLag},
		{Kind: CardExerciseWants, Label: "Exercise → Wants", Value: "r " + stats.FormatR(rEx), Note: fmt.Sprintf("n=%d watch days", nEx), N: nEx},
		{Kind: CardRestingHRWants, Label: "Resting HR → Wants", Value: "r " + stats.FormatR(rRest), Note: fmt.Sprintf("n=%d watch days", nRest), N: nRest},
		{Kind: CardEmotionStressWants, Label: "Emotion stress → Wants", Value: "r " + stats.FormatR(rEmoStress), Note: fmt.Sprintf("n=%d checkin days", nEmoStress), N: nEmoStress},
		{Kind: CardEmotionSentimentWants, Label: "Emotion sentiment → Wants", Value: "r " + stats.FormatR(rEmoSent), Note: fmt.Sprintf("n=%d checkin days", nEmoSent), N: nEmoSent},
		{Kind: CardVideoStressWants, Label: "Video stress → Wants", Value: "r " + stats.FormatR(rStress), Note: fmt.Sprintf("n=%d video days", nStress), N: nStress},
		{Kind: CardVideoSentimentWants, Label: "Video sentiment → Wants", Value: "r " + stats.FormatR(rSent), Note: fmt.Sprintf("n=%d video days", nSent), N: nSent},
		{Kind: CardWantsShare, Label: "Wants share of spending", Value: fmt.Sprintf("%d%%", int(math.Round(wantsShare*100))), Note: "Wants / Total (excluding income)"},
		{Kind: CardTotalSpend, Label: "Total spent (period)", Value: fmt.Sprintf("$%.2f", totalSpend), Note: "All days included"},
		{Kind: CardDataQuality, Label: "Data quality", Value: "Sparse domains tolerated", Note: "Days without watch/video/check-in data are skipped, not zero-filled"},
	}
}

// corrWithWants computes the Spearman correlation between a nullable metric
// and same-day wants spending over the days where the metric exists.
func corrWithWants(rows []timeline.MergedDay, metric func(timeline.MergedDay) *float64) (r float64, n int) {
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	for _, row := range rows {
		if v := metric(row); v != nil {
			xs = append(xs, *v)
			ys = append(ys, row.Wants)
		}
	}
	return stats.Spearman(xs, ys), len(xs)
}

// sleepLagWants pairs sleep hours on day t with wants spending on day t+1,
// the habit-lag hypothesis. Days with no sleep record are skipped.
func sleepLagWants(rows []timeline.MergedDay) (r float64, n int) {
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	for i := 0; i+1 < len(rows); i++ {
		if rows[i].SleepHours != nil {
			xs = append(xs, *rows[i].SleepHours)
			ys = append(ys, rows[i+1].Wants)
		}
	}
	return stats.Spearman(xs, ys), len(xs)
}
