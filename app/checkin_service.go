package app

import (
	"context"

	"lifelens/domain/core"
	"lifelens/domain/signal"
	"lifelens/internal"
	"lifelens/internal/errors"
	"lifelens/ports"
)

// CheckinService validates, normalizes, and persists daily check-ins
type CheckinService struct {
	repo   ports.CheckinRepository
	logger *internal.Logger
}

// SubmitCheckinRequest carries the raw fields of a check-in submission before
// normalization
type SubmitCheckinRequest struct {
	Date          string  `json:"date_of_checkin"`
	Emotion1      string  `json:"emotion1"`
	Emotion2      string  `json:"emotion2"`
	Emotion3      string  `json:"emotion3"`
	Stress        float64 `json:"stress"`
	Summary       string  `json:"life_event_summary"`
	FinancialFlag string  `json:"financial_flags"`
}

// NewCheckinService creates a check-in service
func NewCheckinService(repo ports.CheckinRepository, logger *internal.Logger) *CheckinService {
	return &CheckinService{repo: repo, logger: logger.WithComponent("checkin")}
}

// Submit normalizes and stores a check-in, replacing any earlier submission
// for the same date
func (s *CheckinService) Submit(ctx context.Context, req SubmitCheckinRequest) (*signal.Checkin, error) {
	date, err := core.ParseDateKey(req.Date)
	if err != nil {
		return nil, errors.InvalidInput(err.Error())
	}
	if req.Emotion1 == "" {
		return nil, errors.InvalidInput("emotion1 is required")
	}

	c := signal.Checkin{
		Date:      date,
		Emotion1:  signal.NormalizeEmotion(req.Emotion1),
		Emotion2:  signal.NormalizeEmotion(req.Emotion2),
		Emotion3:  signal.NormalizeEmotion(req.Emotion3),
		Stress:    clampStress(req.Stress),
		Summary:   capSummary(req.Summary),
		Flag:      signal.NormalizeFinancialFlag(req.FinancialFlag),
		CreatedAt: core.Now(),
	}

	if err := s.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("stored check-in for %s (flag=%s, stress=%.1f)", c.Date, c.Flag, c.Stress)
	return &c, nil
}

// Get returns the check-in for a date
func (s *CheckinService) Get(ctx context.Context, date core.DateKey) (*signal.Checkin, error) {
	return s.repo.Get(ctx, date)
}

// List returns all check-ins, newest first
func (s *CheckinService) List(ctx context.Context) ([]signal.Checkin, error) {
	return s.repo.List(ctx)
}

func clampStress(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

func capSummary(s string) string {
	if len(s) > signal.MaxSummaryLen {
		return s[:signal.MaxSummaryLen]
	}
	return s
}
