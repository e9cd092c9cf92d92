// Package heuristic provides a deterministic, offline evidence summarizer.
// It stands in wherever a hosted language model is unavailable or unwanted:
// same port, same bounded input, rule-based output.
package heuristic

import (
	"context"
	"fmt"
	"strings"

	"lifelens/internal/analysis"
)

// Summarizer renders an evidence payload into a short markdown narrative
// using fixed rules
type Summarizer struct{}

// NewSummarizer creates a rule-based summarizer
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize builds the markdown narrative from the evidence payload
func (s *Summarizer) Summarize(ctx context.Context, ev analysis.Evidence) (string, error) {
	var b strings.Builder

	b.WriteString("## Spending insight summary\n\n")
	b.WriteString(fmt.Sprintf("Covering the last %d days of merged data.\n\n", len(ev.RecentDays)))

	if strongest := strongestCorrelation(ev.Cards); strongest != nil {
		b.WriteString(fmt.Sprintf("**Strongest signal:** %s (%s, %s).\n\n",
			strongest.Label, strongest.Value, strongest.Note))
	}

	b.WriteString("### Correlations\n\n")
	for _, c := range ev.Cards {
		if !isCorrelationCard(c.Kind) {
			continue
		}
		b.WriteString(fmt.Sprintf("- %s: %s (%s)\n", c.Label, c.Value, c.Note))
	}
	b.WriteString("\n")

	if len(ev.AnomalyDays) > 0 {
		b.WriteString("### Unusual spending days\n\n")
		for _, d := range ev.AnomalyDays {
			line := fmt.Sprintf("- %s: wants $%.2f", d.Date, d.Wants)
			if d.ZWants != nil {
				line += fmt.Sprintf(" (z=%.2f)", *d.ZWants)
			}
			for _, note := range anomalyNotes(d) {
				line += ", " + note
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	for _, c := range ev.Cards {
		if c.Kind == analysis.CardWantsShare {
			b.WriteString(fmt.Sprintf("Discretionary purchases made up %s of total spending.\n", c.Value))
		}
	}

	return b.String(), nil
}

// strongestCorrelation picks the correlation card with the largest absolute
// coefficient and at least a minimally meaningful sample.
func strongestCorrelation(cards []analysis.Card) *analysis.Card {
	var best *analysis.Card
	bestAbs := 0.0
	for i := range cards {
		c := &cards[i]
		if !isCorrelationCard(c.Kind) || c.N < 5 {
			continue
		}
		var r float64
		if _, err := fmt.Sscanf(c.Value, "r %f", &r); err != nil {
			continue
		}
		abs := r
		if abs < 0 {
			abs = -abs
		}
		if abs > bestAbs {
			bestAbs = abs
			best = c
		}
	}
	return best
}

func isCorrelationCard(kind analysis.CardKind) bool {
	switch kind {
	case analysis.CardSleepLagWants, analysis.CardExerciseWants, analysis.CardRestingHRWants,
		analysis.CardEmotionStressWants, analysis.CardEmotionSentimentWants,
		analysis.CardVideoStressWants, analysis.CardVideoSentimentWants:
		return true
	}
	return false
}

func anomalyNotes(d analysis.EvidenceAnomalyDay) []string {
	var notes []string
	if d.SleepHours != nil && *d.SleepHours < 6 {
		notes = append(notes, fmt.Sprintf("short sleep %.1fh", *d.SleepHours))
	}
	if d.VideoStress != nil && *d.VideoStress >= 6 {
		notes = append(notes, fmt.Sprintf("high stress %.1f", *d.VideoStress))
	}
	if d.EmotionStress != nil && *d.EmotionStress >= 6 {
		notes = append(notes, fmt.Sprintf("reported stress %.0f", *d.EmotionStress))
	}
	return notes
}
