package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelens/domain/signal"
)

func TestMerge_LeftJoinOnSpendingDates(t *testing.T) {
	daily := []DailyAggregate{
		{Date: "2025-03-01", Wants: 30, TotalSpend: 30, Count: 1},
		{Date: "2025-03-02", Wants: 40, TotalSpend: 40, Count: 1},
	}
	wearable := []signal.WearableDay{
		{Date: "2025-03-01", SleepTotalMin: fp(450), HRResting: fp(58), ExerciseMin: fp(35)},
		// No wearable record for 03-02; 03-03 has no spending and must drop.
		{Date: "2025-03-03", SleepTotalMin: fp(400)},
	}
	video := []signal.VideoDay{
		{Date: "2025-03-02", SentimentScore: 0.6, StressScore: 4.5},
	}
	checkins := []signal.Checkin{
		{Date: "2025-03-01", Emotion1: "happy", Stress: 3, Flag: signal.FlagBaseline},
	}

	out := Merge(daily, wearable, video, checkins)
	require.Len(t, out, 2)

	d1 := out[0]
	require.NotNil(t, d1.SleepHours)
	assert.InDelta(t, 7.5, *d1.SleepHours, 1e-12)
	assert.Equal(t, 58.0, *d1.RestingHR)
	assert.Equal(t, 35.0, *d1.ExerciseMin)
	assert.Nil(t, d1.VideoSentiment)
	require.NotNil(t, d1.EmotionStress)
	assert.Equal(t, 3.0, *d1.EmotionStress)
	require.NotNil(t, d1.EmotionSentiment)
	assert.Equal(t, 1.0, *d1.EmotionSentiment)

	d2 := out[1]
	assert.Nil(t, d2.SleepHours)
	assert.Nil(t, d2.RestingHR)
	require.NotNil(t, d2.VideoSentiment)
	assert.Equal(t, 0.6, *d2.VideoSentiment)
	assert.Equal(t, 4.5, *d2.VideoStress)
	assert.Nil(t, d2.EmotionStress)
	assert.Nil(t, d2.EmotionSentiment)
}

func TestMerge_WearableDayWithoutSleep(t *testing.T) {
	daily := []DailyAggregate{{Date: "2025-03-01", Count: 1}}
	wearable := []signal.WearableDay{{Date: "2025-03-01", HRResting: fp(60)}}

	out := Merge(daily, wearable, nil, nil)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].SleepHours)
	assert.Equal(t, 60.0, *out[0].RestingHR)
}

func TestMerge_EmptyEmotionGivesNoSentiment(t *testing.T) {
	daily := []DailyAggregate{{Date: "2025-03-01", Count: 1}}
	checkins := []signal.Checkin{{Date: "2025-03-01", Emotion1: "", Stress: 5, Flag: signal.FlagOther}}

	out := Merge(daily, nil, nil, checkins)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].EmotionStress)
	assert.Equal(t, 5.0, *out[0].EmotionStress)
	assert.Nil(t, out[0].EmotionSentiment)
}

func TestMerge_UnknownEmotionScoresZero(t *testing.T) {
	daily := []DailyAggregate{{Date: "2025-03-01", Count: 1}}
	checkins := []signal.Checkin{{Date: "2025-03-01", Emotion1: "bewildered", Stress: 2, Flag: signal.FlagOther}}

	out := Merge(daily, nil, nil, checkins)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].EmotionSentiment)
	assert.Equal(t, 0.0, *out[0].EmotionSentiment)
}

func fp(v float64) *float64 { return &v }
