// Package postgres provides a Postgres-backed check-in repository for
// deployments that outgrow the JSON file store.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"lifelens/domain/core"
	"lifelens/domain/signal"
	"lifelens/internal/errors"
	"lifelens/ports"
)

// CheckinRepositoryImpl implements CheckinRepository for PostgreSQL
type CheckinRepositoryImpl struct {
	db *sqlx.DB
}

// NewCheckinRepository creates a new PostgreSQL check-in repository
func NewCheckinRepository(db *sqlx.DB) ports.CheckinRepository {
	return &CheckinRepositoryImpl{db: db}
}

// Connect opens a Postgres connection pool and verifies it
func Connect(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, errors.WithCode(errors.CodeStorageError, errors.Wrap(err, "failed to connect to Postgres"))
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// EnsureSchema creates the check-in table if it does not exist
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS checkins (
			date           TEXT PRIMARY KEY,
			emotion1       TEXT NOT NULL,
			emotion2       TEXT NOT NULL DEFAULT '',
			emotion3       TEXT NOT NULL DEFAULT '',
			stress         DOUBLE PRECISION NOT NULL,
			summary        TEXT NOT NULL DEFAULT '',
			financial_flag TEXT NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return errors.WithCode(errors.CodeStorageError, errors.Wrap(err, "failed to ensure check-in schema"))
	}
	return nil
}

type checkinRow struct {
	Date          string    `db:"date"`
	Emotion1      string    `db:"emotion1"`
	Emotion2      string    `db:"emotion2"`
	Emotion3      string    `db:"emotion3"`
	Stress        float64   `db:"stress"`
	Summary       string    `db:"summary"`
	FinancialFlag string    `db:"financial_flag"`
	CreatedAt     time.Time `db:"created_at"`
}

// Upsert stores a check-in, replacing any existing record for the same date
func (r *CheckinRepositoryImpl) Upsert(ctx context.Context, c signal.Checkin) error {
	if err := c.Validate(); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO checkins (date, emotion1, emotion2, emotion3, stress, summary, financial_flag, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (date) DO UPDATE SET
			emotion1 = EXCLUDED.emotion1,
			emotion2 = EXCLUDED.emotion2,
			emotion3 = EXCLUDED.emotion3,
			stress = EXCLUDED.stress,
			summary = EXCLUDED.summary,
			financial_flag = EXCLUDED.financial_flag,
			created_at = EXCLUDED.created_at
	`, c.Date.String(), c.Emotion1, c.Emotion2, c.Emotion3, c.Stress, c.Summary, string(c.Flag), c.CreatedAt.Time())

	if err != nil {
		return errors.WithCode(errors.CodeStorageError, errors.Wrap(err, "failed to upsert check-in"))
	}
	return nil
}

// Get returns the check-in for a date, or a NOT_FOUND error
func (r *CheckinRepositoryImpl) Get(ctx context.Context, date core.DateKey) (*signal.Checkin, error) {
	var row checkinRow
	err := r.db.GetContext(ctx, &row, `
		SELECT date, emotion1, emotion2, emotion3, stress, summary, financial_flag, created_at
		FROM checkins
		WHERE date = $1
	`, date.String())
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("check-in")
	}
	if err != nil {
		return nil, errors.WithCode(errors.CodeStorageError, errors.Wrap(err, "failed to load check-in"))
	}

	c := rowToCheckin(row)
	return &c, nil
}

// List returns all check-ins sorted by date descending
func (r *CheckinRepositoryImpl) List(ctx context.Context) ([]signal.Checkin, error) {
	var rows []checkinRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT date, emotion1, emotion2, emotion3, stress, summary, financial_flag, created_at
		FROM checkins
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, errors.WithCode(errors.CodeStorageError, errors.Wrap(err, "failed to list check-ins"))
	}

	checkins := make([]signal.Checkin, 0, len(rows))
	for _, row := range rows {
		checkins = append(checkins, rowToCheckin(row))
	}
	return checkins, nil
}

func rowToCheckin(row checkinRow) signal.Checkin {
	return signal.Checkin{
		Date:      core.DateKey(row.Date),
		Emotion1:  row.Emotion1,
		Emotion2:  row.Emotion2,
		Emotion3:  row.Emotion3,
		Stress:    row.Stress,
		Summary:   row.Summary,
		Flag:      signal.FinancialFlag(row.FinancialFlag),
		CreatedAt: core.NewTimestamp(row.CreatedAt),
	}
}
