package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_Unique(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.False(t, a.IsEmpty())
	assert.NotEqual(t, a, b)
}

func TestParseDateKey(t *testing.T) {
	d, err := ParseDateKey(" 2025-03-01 ")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", d.String())

	for _, bad := range []string{"", "2025-3-1", "03/01/2025", "2025-03-01T00:00:00Z"} {
		_, err := ParseDateKey(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDateKey_Before(t *testing.T) {
	assert.True(t, DateKey("2025-03-01").Before("2025-03-02"))
	assert.True(t, DateKey("2024-12-31").Before("2025-01-01"))
	assert.False(t, DateKey("2025-03-02").Before("2025-03-02"))
}

func TestTimestamp_JSONRoundTrip(t *testing.T) {
	ts := NewTimestamp(time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC))

	data, err := json.Marshal(ts)
	require.NoError(t, err)

	var back Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, ts.Time().Equal(back.Time()))
}
