package heuristic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelens/internal/analysis"
)

func fp(v float64) *float64 { return &v }

func testEvidence() analysis.Evidence {
	return analysis.Evidence{
		Cards: []analysis.Card{
			{Kind: analysis.CardSleepLagWants, Label: "Sleep → Wants (next day)", Value: "r -0.35", Note: "n=20", N: 20},
			{Kind: analysis.CardExerciseWants, Label: "Exercise → Wants", Value: "r +0.62", Note: "n=18", N: 18},
			{Kind: analysis.CardVideoStressWants, Label: "Video stress → Wants", Value: "r +0.80", Note: "n=3", N: 3},
			{Kind: analysis.CardWantsShare, Label: "Wants share of spending", Value: "41%", Note: "Wants / Total (excluding income)"},
			{Kind: analysis.CardTotalSpend, Label: "Total spent (period)", Value: "$1234.00", Note: "All days included"},
		},
		RecentDays: []analysis.RecentDay{
			{Date: "2025-03-01", Wants: 30},
			{Date: "2025-03-02", Wants: 45},
		},
		AnomalyDays: []analysis.EvidenceAnomalyDay{
			{Date: "2025-03-02", Wants: 145.5, ZWants: fp(2.4), SleepHours: fp(4.5), VideoStress: fp(7)},
		},
	}
}

func TestSummarizer_SectionsAndContent(t *testing.T) {
	md, err := NewSummarizer().Summarize(context.Background(), testEvidence())
	require.NoError(t, err)

	assert.Contains(t, md, "## Spending insight summary")
	assert.Contains(t, md, "### Correlations")
	assert.Contains(t, md, "### Unusual spending days")
	assert.Contains(t, md, "2025-03-02: wants $145.50 (z=2.40)")
	assert.Contains(t, md, "short sleep 4.5h")
	assert.Contains(t, md, "high stress 7.0")
	assert.Contains(t, md, "41% of total spending")
}

func TestSummarizer_StrongestSignalNeedsSample(t *testing.T) {
	// The +0.80 card only has n=3, so the n=18 exercise card wins.
	md, err := NewSummarizer().Summarize(context.Background(), testEvidence())
	require.NoError(t, err)
	assert.Contains(t, md, "**Strongest signal:** Exercise → Wants")
}

func TestSummarizer_Deterministic(t *testing.T) {
	ev := testEvidence()
	a, err := NewSummarizer().Summarize(context.Background(), ev)
	require.NoError(t, err)
	b, err := NewSummarizer().Summarize(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSummarizer_EmptyEvidence(t *testing.T) {
	md, err := NewSummarizer().Summarize(context.Background(), analysis.Evidence{})
	require.NoError(t, err)
	assert.Contains(t, md, "## Spending insight summary")
	assert.NotContains(t, md, "Unusual spending days")
}
