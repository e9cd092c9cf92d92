package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{3, 1, 5}))
	assert.Equal(t, 2.5, Median([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, Median(nil))
}

func TestMAD(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 100}
	assert.Equal(t, 1.0, MAD(xs, 3))
	assert.Equal(t, 0.0, MAD([]float64{5, 5, 5}, 5))
}

func TestMeanAndStdDev(t *testing.T) {
	assert.Equal(t, 3.0, Mean([]float64{2, 4}))
	assert.Equal(t, 1.0, StdDev([]float64{2, 4}))
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, StdDev(nil))
}
