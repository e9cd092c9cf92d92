package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestRobustZ(t *testing.T) {
	assert.Equal(t, 0.0, RobustZ(10, 3, 0))
	assert.InDelta(t, 0.6745, RobustZ(4, 3, 1), 1e-12)
	assert.InDelta(t, -1.349, RobustZ(1, 3, 1), 1e-12)
}

func TestRobustZSeries_MadConvention(t *testing.T) {
	// median 3, MAD 1: the outlier at 100 scores 0.6745*97.
	in := []*float64{fp(1), fp(2), fp(3), fp(4), fp(100)}
	out := RobustZSeries(in)

	require.Len(t, out, 5)
	assert.InDelta(t, -1.349, *out[0], 1e-9)
	assert.InDelta(t, -0.6745, *out[1], 1e-9)
	assert.InDelta(t, 0.0, *out[2], 1e-9)
	assert.InDelta(t, 0.6745, *out[3], 1e-9)
	assert.InDelta(t, 65.4265, *out[4], 1e-9)
}

func TestRobustZSeries_SmallSamplePreservesNulls(t *testing.T) {
	in := []*float64{fp(1), nil, fp(2), nil}
	out := RobustZSeries(in)

	require.Len(t, out, 4)
	assert.Equal(t, 0.0, *out[0])
	assert.Nil(t, out[1])
	assert.Equal(t, 0.0, *out[2])
	assert.Nil(t, out[3])
}

func TestRobustZSeries_ZeroMadFallsBackToClassicZ(t *testing.T) {
	// MAD is 0 but the spread is not: classic z over mean 5.2, sd 0.4.
	in := []*float64{fp(5), fp(5), fp(5), fp(5), fp(6)}
	out := RobustZSeries(in)

	require.Len(t, out, 5)
	assert.InDelta(t, -0.5, *out[0], 1e-9)
	assert.InDelta(t, -0.5, *out[3], 1e-9)
	assert.InDelta(t, 2.0, *out[4], 1e-9)
}

func TestRobustZSeries_ConstantSeriesIsAllZero(t *testing.T) {
	in := []*float64{fp(7), fp(7), fp(7), fp(7), fp(7)}
	out := RobustZSeries(in)

	for _, z := range out {
		require.NotNil(t, z)
		assert.Equal(t, 0.0, *z)
	}
}

func TestRobustZSeries_NilsExcludedFromSample(t *testing.T) {
	// The nil must not drag the median: clean sample is {1,2,3,4,100}.
	in := []*float64{fp(1), fp(2), nil, fp(3), fp(4), fp(100)}
	out := RobustZSeries(in)

	require.Len(t, out, 6)
	assert.Nil(t, out[2])
	assert.InDelta(t, 0.0, *out[3], 1e-9)
	assert.InDelta(t, 65.4265, *out[5], 1e-9)
}
