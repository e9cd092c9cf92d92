package analysis

import (
	"fmt"
	"math"
	"sort"

	"lifelens/domain/core"
	"lifelens/domain/timeline"
	"lifelens/internal/stats"
)

// Default anomaly thresholds. The primary threshold decides which days count
// as anomalous at all; the secondary threshold applies only to co-occurring
// factors around an anomaly day and is intentionally looser, since
// contributing signals (e.g. sleep debt from the prior night) run weaker than
// the spending anomaly itself. The two are independent knobs.
const (
	DefaultPrimaryZ   = 2.0
	DefaultSecondaryZ = 1.75
	DefaultTopK       = 5
)

// positiveSentimentFloor marks a counter-signal: video sentiment above it on
// an anomaly day earns a "good" tag alongside the bad ones.
const positiveSentimentFloor = 0.4

// tagRenderLimit bounds a rendered tag's length in runes.
const tagRenderLimit = 60

// AnomalyConfig tunes the detector.
type AnomalyConfig struct {
	PrimaryZ   float64
	SecondaryZ float64
	TopK       int
}

// DefaultAnomalyConfig returns the standard thresholds.
func DefaultAnomalyConfig() AnomalyConfig {
	return AnomalyConfig{PrimaryZ: DefaultPrimaryZ, SecondaryZ: DefaultSecondaryZ, TopK: DefaultTopK}
}

// Flags holds the per-metric robust z-series and the derived boolean flag
// arrays, all index-aligned with the merged series.
type Flags struct {
	ZWants       []*float64 `json:"z_wants"`
	ZSleep       []*float64 `json:"z_sleep"`
	ZExercise    []*float64 `json:"z_exercise"`
	ZRestingHR   []*float64 `json:"z_resting_hr"`
	ZVideoStress []*float64 `json:"z_video_stress"`

	WantsUnusual    []bool `json:"wants_unusual"`
	SleepLow        []bool `json:"sleep_low"`
	ExerciseLow     []bool `json:"exercise_low"`
	RestingHRHigh   []bool `json:"resting_hr_high"`
	VideoStressHigh []bool `json:"video_stress_high"`
}

// TagKind enumerates the explanatory tags an anomaly day can carry.
type TagKind string

const (
	TagWantsZ            TagKind = "wants_z"
	TagWantsAmount       TagKind = "wants_amount"
	TagLowSleep          TagKind = "low_sleep"
	TagLowExercise       TagKind = "low_exercise"
	TagHighRestingHR     TagKind = "high_resting_hr"
	TagHighVideoStress   TagKind = "high_video_stress"
	TagPositiveSentiment TagKind = "positive_sentiment"
)

// Tag is one explanatory chip on an anomaly day. Good marks counter-signals.
type Tag struct {
	Kind TagKind `json:"kind"`
	Text string  `json:"text"`
	Good bool    `json:"good,omitempty"`
}

// Render returns the display text clamped to the tag length limit.
func (t Tag) Render() string {
	return clampText(t.Text, tagRenderLimit)
}

// AnomalyDay is one of the top-ranked unusual spending days with its tags.
type AnomalyDay struct {
	Date core.DateKey `json:"date"`
	Tags []Tag        `json:"tags"`
}

// TimelinePoint pairs each day's wants spending with its absolute z-score
// for the anomaly chart.
type TimelinePoint struct {
	Date  core.DateKey `json:"date"`
	Wants float64      `json:"wants"`
	AbsZ  float64      `json:"abs_z"`
}

// AnomalyBundle is the full detector output.
type AnomalyBundle struct {
	Flags    Flags           `json:"flags"`
	Timeline []TimelinePoint `json:"timeline"`
	Top      []AnomalyDay    `json:"top"`
}

// ComputeFlags derives robust z-series and threshold flags for the five
// monitored metrics. A series with fewer than five clean points silently
// yields all-zero z-scores and no flags.
func ComputeFlags(rows []timeline.MergedDay, primaryZ float64) Flags {
	wants := make([]*float64, len(rows))
	sleep := make([]*float64, len(rows))
	exercise := make([]*float64, len(rows))
	resting := make([]*float64, len(rows))
	stress := make([]*float64, len(rows))
	for i, r := range rows {
		w := r.Wants
		wants[i] = &w
		sleep[i] = r.SleepHours
		exercise[i] = r.ExerciseMin
		resting[i] = r.RestingHR
		stress[i] = r.VideoStress
	}

	f := Flags{
		ZWants:       stats.RobustZSeries(wants),
		ZSleep:       stats.RobustZSeries(sleep),
		ZExercise:    stats.RobustZSeries(exercise),
		ZRestingHR:   stats.RobustZSeries(resting),
		ZVideoStress: stats.RobustZSeries(stress),
	}

	f.WantsUnusual = flagSeries(f.ZWants, func(z float64) bool { return math.Abs(z) >= primaryZ })
	f.SleepLow = flagSeries(f.ZSleep, func(z float64) bool { return z <= -primaryZ })
	f.ExerciseLow = flagSeries(f.ZExercise, func(z float64) bool { return z <= -primaryZ })
	f.RestingHRHigh = flagSeries(f.ZRestingHR, func(z float64) bool { return z >= primaryZ })
	f.VideoStressHigh = flagSeries(f.ZVideoStress, func(z float64) bool { return z >= primaryZ })
	return f
}

// TopKByAbsZ ranks indices by absolute z descending and returns the first k.
// Nil or NaN entries rank as 0 for ranking only; the stored flags are not
// affected. Ties keep original order.
func TopKByAbsZ(z []*float64, k int) []int {
	idx := make([]int, len(z))
	for i := range idx {
		idx[i] = i
	}
	absAt := func(i int) float64 {
		if z[i] == nil || math.IsNaN(*z[i]) {
			return 0
		}
		return math.Abs(*z[i])
	}
	sort.SliceStable(idx, func(a, b int) bool { return absAt(idx[a]) > absAt(idx[b]) })
	if k < len(idx) {
		idx = idx[:k]
	}
	return idx
}

// DetectAnomalies runs the full detector: z-series, flags, the timeline, and
// the tagged top-K day list.
func DetectAnomalies(rows []timeline.MergedDay, cfg AnomalyConfig) AnomalyBundle {
	flags := ComputeFlags(rows, cfg.PrimaryZ)

	timelinePoints := make([]TimelinePoint, len(rows))
	for i, r := range rows {
		absZ := 0.0
		if flags.ZWants[i] != nil {
			absZ = math.Abs(*flags.ZWants[i])
		}
		timelinePoints[i] = TimelinePoint{Date: r.Date, Wants: r.Wants, AbsZ: absZ}
	}

	picked := TopKByAbsZ(flags.ZWants, cfg.TopK)
	top := make([]AnomalyDay, 0, len(picked))
	for _, i := range picked {
		top = append(top, AnomalyDay{Date: rows[i].Date, Tags: dayTags(rows, flags, i, cfg.SecondaryZ)})
	}

	return AnomalyBundle{Flags: flags, Timeline: timelinePoints, Top: top}
}

// dayTags builds the explanatory tag list for one anomaly day. The wants
// z-score and dollar amount always lead; co-anomalies follow at the softer
// secondary threshold. The sleep check scans the {i-1, i, i+1} neighborhood
// (self included) for the most negative sleep z; the remaining checks are
// same-day only and require the raw value to exist.
func dayTags(rows []timeline.MergedDay, flags Flags, i int, secondaryZ float64) []Tag {
	r := rows[i]
	zw := 0.0
	if flags.ZWants[i] != nil {
		zw = *flags.ZWants[i]
	}

	tags := []Tag{
		{Kind: TagWantsZ, Text: fmt.Sprintf("wants z=%.2f", zw)},
		{Kind: TagWantsAmount, Text: fmt.Sprintf("wants=$%.2f", r.Wants)},
	}

	if j, z, ok := mostNegativeSleep(flags.ZSleep, i); ok && z <= -secondaryZ {
		if sh := rows[j].SleepHours; sh != nil {
			tags = append(tags, Tag{Kind: TagLowSleep, Text: fmt.Sprintf("low sleep (%.1fh)", *sh)})
		}
	}

	if zx := flags.ZExercise[i]; zx != nil && *zx <= -secondaryZ && r.ExerciseMin != nil {
		tags = append(tags, Tag{Kind: TagLowExercise, Text: fmt.Sprintf("low exercise (%.0fm)", *r.ExerciseMin)})
	}

	if zr := flags.ZRestingHR[i]; zr != nil && *zr >= secondaryZ && r.RestingHR != nil {
		tags = append(tags, Tag{Kind: TagHighRestingHR, Text: fmt.Sprintf("high rest HR (%.0f bpm)", *r.RestingHR)})
	}

	if zs := flags.ZVideoStress[i]; zs != nil && *zs >= secondaryZ && r.VideoStress != nil {
		tags = append(tags, Tag{Kind: TagHighVideoStress, Text: fmt.Sprintf("high stress (%.1f)", *r.VideoStress)})
	}

	if r.VideoSentiment != nil && *r.VideoSentiment > positiveSentimentFloor {
		tags = append(tags, Tag{Kind: TagPositiveSentiment, Text: fmt.Sprintf("positive sentiment (%.2f)", *r.VideoSentiment), Good: true})
	}

	return tags
}

// mostNegativeSleep picks the lowest sleep z-score among {i-1, i, i+1}.
func mostNegativeSleep(zSleep []*float64, i int) (idx int, z float64, ok bool) {
	best := math.Inf(1)
	bestIdx := -1
	for _, j := range []int{i - 1, i, i + 1} {
		if j < 0 || j >= len(zSleep) || zSleep[j] == nil {
			continue
		}
		if *zSleep[j] < best {
			best = *zSleep[j]
			bestIdx = j
		}
	}
	if bestIdx < 0 {
		return 0, 0, false
	}
	return bestIdx, best, true
}

func flagSeries(z []*float64, pred func(float64) bool) []bool {
	out := make([]bool, len(z))
	for i, v := range z {
		out[i] = v != nil && pred(*v)
	}
	return out
}

// clampText trims text to maxRunes, replacing the final rune with an
// ellipsis when truncation occurs.
func clampText(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes-1]) + "…"
}
