package signal

import (
	"fmt"
	"regexp"
	"strings"

	"lifelens/domain/core"
)

// FinancialFlag classifies the spending posture a check-in reports.
type FinancialFlag string

const (
	FlagBaseline       FinancialFlag = "baseline_spending"
	FlagImpulse        FinancialFlag = "impulse_spending"
	FlagComfort        FinancialFlag = "comfort_spending"
	FlagSmallReward    FinancialFlag = "small_reward_purchase"
	FlagGift           FinancialFlag = "gift_spending"
	FlagFuturePlanning FinancialFlag = "increased_future_planning"
	FlagOther          FinancialFlag = "other"
)

// FinancialFlags lists every valid flag in declaration order.
var FinancialFlags = []FinancialFlag{
	FlagBaseline,
	FlagImpulse,
	FlagComfort,
	FlagSmallReward,
	FlagGift,
	FlagFuturePlanning,
	FlagOther,
}

const (
	// MaxEmotionLen bounds a single emotion word.
	MaxEmotionLen = 50
	// MaxSummaryLen bounds the free-text life event summary.
	MaxSummaryLen = 500
)

// Checkin is one day of self-reported emotional state. At most one exists per
// date; a second submission for the same date replaces the first.
type Checkin struct {
	Date      core.DateKey   `json:"date_of_checkin"`
	Emotion1  string         `json:"emotion1"`
	Emotion2  string         `json:"emotion2"`
	Emotion3  string         `json:"emotion3"`
	Stress    float64        `json:"stress"` // 0..10
	Summary   string         `json:"life_event_summary"`
	Flag      FinancialFlag  `json:"financial_flags"`
	CreatedAt core.Timestamp `json:"created_at,omitempty"`
}

// Validate checks the invariants a stored check-in must satisfy.
func (c Checkin) Validate() error {
	if c.Date == "" {
		return fmt.Errorf("check-in date is required")
	}
	if c.Stress < 0 || c.Stress > 10 {
		return fmt.Errorf("stress %v out of range 0..10", c.Stress)
	}
	if len(c.Summary) > MaxSummaryLen {
		return fmt.Errorf("life event summary exceeds %d characters", MaxSummaryLen)
	}
	for _, f := range FinancialFlags {
		if c.Flag == f {
			return nil
		}
	}
	return fmt.Errorf("unknown financial flag %q", c.Flag)
}

var wordSeparators = regexp.MustCompile(`[\s_]+`)

// NormalizeEmotion lowercases a free-form emotion word, collapses whitespace
// and underscore runs into single underscores, and caps the length.
func NormalizeEmotion(word string) string {
	w := wordSeparators.ReplaceAllString(strings.ToLower(strings.TrimSpace(word)), "_")
	if len(w) > MaxEmotionLen {
		w = w[:MaxEmotionLen]
	}
	return w
}

// NormalizeFinancialFlag coerces extractor output into the closed flag
// enumeration. Anything unrecognized becomes FlagOther rather than an error:
// the extraction collaborator is not trusted to spell the enum exactly.
func NormalizeFinancialFlag(raw string) FinancialFlag {
	normalized := wordSeparators.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), "_")
	for _, f := range FinancialFlags {
		if normalized == string(f) {
			return f
		}
	}
	return FlagOther
}
