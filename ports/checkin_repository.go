package ports

import (
	"context"

	"lifelens/domain/core"
	"lifelens/domain/signal"
)

// CheckinRepository persists daily check-ins. One check-in per date: saving a
// date that already exists replaces the stored record.
type CheckinRepository interface {
	// Upsert stores a check-in, replacing any existing record for the same date
	Upsert(ctx context.Context, c signal.Checkin) error

	// Get returns the check-in for a date, or a NOT_FOUND error
	Get(ctx context.Context, date core.DateKey) (*signal.Checkin, error)

	// List returns all check-ins sorted by date descending (newest first)
	List(ctx context.Context) ([]signal.Checkin, error)
}
