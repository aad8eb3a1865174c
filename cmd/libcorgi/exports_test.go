//go:build cgo

package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddExport(t *testing.T) {
	assert.Equal(t, int32(5), add(2, 3))
	assert.Equal(t, add(-11, 4), add(4, -11))
	assert.Equal(t, int32(math.MinInt32), add(math.MaxInt32, 1))
}

func TestFrequencyExport(t *testing.T) {
	assert.Equal(t, 440.0, getFrequencyUsingHalfStepsFromA4(0))
	assert.InEpsilon(t, 880.0, getFrequencyUsingHalfStepsFromA4(12), 1e-9)
	assert.InEpsilon(t, 220.0, getFrequencyUsingHalfStepsFromA4(-12), 1e-9)
	assert.InEpsilon(t, 739.9888454232688, getFrequencyUsingHalfStepsFromA4(9), 1e-9)
}
