package app

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelens/domain/core"
	"lifelens/domain/signal"
	"lifelens/internal"
	"lifelens/internal/errors"
)

// memCheckinRepo is an in-memory CheckinRepository for service tests
type memCheckinRepo struct {
	byDate map[core.DateKey]signal.Checkin
}

func newMemCheckinRepo() *memCheckinRepo {
	return &memCheckinRepo{byDate: make(map[core.DateKey]signal.Checkin)}
}

func (m *memCheckinRepo) Upsert(ctx context.Context, c signal.Checkin) error {
	if err := c.Validate(); err != nil {
		return err
	}
	m.byDate[c.Date] = c
	return nil
}

func (m *memCheckinRepo) Get(ctx context.Context, date core.DateKey) (*signal.Checkin, error) {
	c, ok := m.byDate[date]
	if !ok {
		return nil, errors.NotFound("check-in")
	}
	return &c, nil
}

func (m *memCheckinRepo) List(ctx context.Context) ([]signal.Checkin, error) {
	out := make([]signal.Checkin, 0, len(m.byDate))
	for _, c := range m.byDate {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[j].Date.Before(out[i].Date) })
	return out, nil
}

func TestCheckinService_SubmitNormalizes(t *testing.T) {
	svc := NewCheckinService(newMemCheckinRepo(), internal.NewLogger(internal.LogLevelError))

	c, err := svc.Submit(context.Background(), SubmitCheckinRequest{
		Date:          "2025-03-01",
		Emotion1:      "  Burnt  Out ",
		Emotion2:      "CALM",
		Stress:        14,
		Summary:       strings.Repeat("s", 600),
		FinancialFlag: "Impulse Spending",
	})
	require.NoError(t, err)

	assert.Equal(t, "burnt_out", c.Emotion1)
	assert.Equal(t, "calm", c.Emotion2)
	assert.Equal(t, "", c.Emotion3)
	assert.Equal(t, 10.0, c.Stress)
	assert.Len(t, c.Summary, signal.MaxSummaryLen)
	assert.Equal(t, signal.FlagImpulse, c.Flag)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestCheckinService_SubmitReplacesSameDate(t *testing.T) {
	repo := newMemCheckinRepo()
	svc := NewCheckinService(repo, internal.NewLogger(internal.LogLevelError))
	ctx := context.Background()

	_, err := svc.Submit(ctx, SubmitCheckinRequest{Date: "2025-03-01", Emotion1: "sad", Stress: 6})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, SubmitCheckinRequest{Date: "2025-03-01", Emotion1: "content", Stress: 2})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "content", all[0].Emotion1)
}

func TestCheckinService_SubmitRejectsBadInput(t *testing.T) {
	svc := NewCheckinService(newMemCheckinRepo(), internal.NewLogger(internal.LogLevelError))
	ctx := context.Background()

	_, err := svc.Submit(ctx, SubmitCheckinRequest{Date: "March 1st", Emotion1: "sad"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	_, err = svc.Submit(ctx, SubmitCheckinRequest{Date: "2025-03-01", Emotion1: ""})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestCheckinService_UnknownFlagBecomesOther(t *testing.T) {
	svc := NewCheckinService(newMemCheckinRepo(), internal.NewLogger(internal.LogLevelError))

	c, err := svc.Submit(context.Background(), SubmitCheckinRequest{
		Date:          "2025-03-01",
		Emotion1:      "hopeful",
		FinancialFlag: "retail therapy",
	})
	require.NoError(t, err)
	assert.Equal(t, signal.FlagOther, c.Flag)
}

func TestCheckinService_NegativeStressClampsToZero(t *testing.T) {
	svc := NewCheckinService(newMemCheckinRepo(), internal.NewLogger(internal.LogLevelError))

	c, err := svc.Submit(context.Background(), SubmitCheckinRequest{
		Date:     "2025-03-01",
		Emotion1: "calm",
		Stress:   -3,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Stress)
}
