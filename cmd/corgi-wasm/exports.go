//go:build wasip1

package main

import (
	"github.com/adenflorian/corgi.fm/pkg/arith"
	"github.com/adenflorian/corgi.fm/pkg/pitch"
)

//go:wasmexport add
func add(a, b int32) int32 {
	return arith.Add(a, b)
}

//go:wasmexport getFrequencyUsingHalfStepsFromA4
func frequencyFromHalfSteps(halfSteps float64) float64 {
	return pitch.FrequencyFromHalfSteps(halfSteps)
}
