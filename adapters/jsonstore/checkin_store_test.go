package jsonstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelens/domain/core"
	"lifelens/domain/signal"
	"lifelens/internal/errors"
)

func newTestStore(t *testing.T) (*CheckinStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checkins.json")
	return NewCheckinStore(path).(*CheckinStore), path
}

func testCheckin(date string) signal.Checkin {
	return signal.Checkin{
		Date:      core.DateKey(date),
		Emotion1:  "calm",
		Stress:    3,
		Flag:      signal.FlagBaseline,
		CreatedAt: core.Now(),
	}
}

func TestCheckinStore_EmptyFileMeansNoCheckins(t *testing.T) {
	store, _ := newTestStore(t)

	checkins, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, checkins)
}

func TestCheckinStore_UpsertAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, testCheckin("2025-03-01")))

	got, err := store.Get(ctx, "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "calm", got.Emotion1)

	_, err = store.Get(ctx, "2025-03-02")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestCheckinStore_UpsertReplacesSameDate(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, testCheckin("2025-03-01")))

	updated := testCheckin("2025-03-01")
	updated.Emotion1 = "stressed"
	updated.Stress = 8
	require.NoError(t, store.Upsert(ctx, updated))

	checkins, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, checkins, 1)
	assert.Equal(t, "stressed", checkins[0].Emotion1)
	assert.Equal(t, 8.0, checkins[0].Stress)
}

func TestCheckinStore_ListNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, d := range []string{"2025-03-02", "2025-03-05", "2025-03-01"} {
		require.NoError(t, store.Upsert(ctx, testCheckin(d)))
	}

	checkins, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, checkins, 3)
	assert.Equal(t, "2025-03-05", checkins[0].Date.String())
	assert.Equal(t, "2025-03-02", checkins[1].Date.String())
	assert.Equal(t, "2025-03-01", checkins[2].Date.String())
}

func TestCheckinStore_FileStaysSortedOnDisk(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, testCheckin("2025-03-01")))
	require.NoError(t, store.Upsert(ctx, testCheckin("2025-03-03")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk []signal.Checkin
	require.NoError(t, json.Unmarshal(data, &onDisk))
	require.Len(t, onDisk, 2)
	assert.Equal(t, "2025-03-03", onDisk[0].Date.String())
}

func TestCheckinStore_RejectsInvalidCheckin(t *testing.T) {
	store, _ := newTestStore(t)

	bad := testCheckin("2025-03-01")
	bad.Stress = 42
	assert.Error(t, store.Upsert(context.Background(), bad))
}

func TestCheckinStore_CorruptFile(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := store.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeStorageError, errors.GetCode(err))
}
