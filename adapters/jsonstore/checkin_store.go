// Package jsonstore persists check-ins and loads input signals from plain
// JSON files under a single data directory.
package jsonstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"lifelens/domain/core"
	"lifelens/domain/signal"
	"lifelens/internal/errors"
	"lifelens/ports"
)

// CheckinStore implements CheckinRepository over a single JSON array file.
// The file holds all check-ins sorted by date descending and is rewritten
// atomically on every upsert.
type CheckinStore struct {
	path string
	mu   sync.Mutex
}

// NewCheckinStore creates a check-in store backed by the given file path
func NewCheckinStore(path string) ports.CheckinRepository {
	return &CheckinStore{path: path}
}

// Upsert stores a check-in, replacing any existing record for the same date
func (s *CheckinStore) Upsert(ctx context.Context, c signal.Checkin) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	checkins, err := s.readAll()
	if err != nil {
		return err
	}

	replaced := false
	for i := range checkins {
		if checkins[i].Date == c.Date {
			checkins[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		checkins = append(checkins, c)
	}

	sortByDateDesc(checkins)
	return s.writeAll(checkins)
}

// Get returns the check-in for a date, or a NOT_FOUND error
func (s *CheckinStore) Get(ctx context.Context, date core.DateKey) (*signal.Checkin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	checkins, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for i := range checkins {
		if checkins[i].Date == date {
			return &checkins[i], nil
		}
	}
	return nil, errors.NotFound("check-in")
}

// List returns all check-ins sorted by date descending
func (s *CheckinStore) List(ctx context.Context) ([]signal.Checkin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	checkins, err := s.readAll()
	if err != nil {
		return nil, err
	}
	sortByDateDesc(checkins)
	return checkins, nil
}

func (s *CheckinStore) readAll() ([]signal.Checkin, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []signal.Checkin{}, nil
		}
		return nil, errors.Wrap(err, "failed to read check-in store")
	}
	if len(data) == 0 {
		return []signal.Checkin{}, nil
	}

	var checkins []signal.Checkin
	if err := json.Unmarshal(data, &checkins); err != nil {
		return nil, errors.WithCode(errors.CodeStorageError, errors.Wrap(err, "check-in store is corrupt"))
	}
	return checkins, nil
}

// writeAll rewrites the store via a temp file and rename so a crash mid-write
// never leaves a truncated store behind.
func (s *CheckinStore) writeAll(checkins []signal.Checkin) error {
	data, err := json.MarshalIndent(checkins, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode check-ins")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create data directory")
	}

	tmp, err := os.CreateTemp(dir, ".checkins-*.json")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to write check-in store")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to flush check-in store")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to replace check-in store")
	}
	return nil
}

func sortByDateDesc(checkins []signal.Checkin) {
	sort.SliceStable(checkins, func(i, j int) bool {
		return checkins[j].Date.Before(checkins[i].Date)
	})
}
