//go:build cgo

package main

import "C"

import (
	"github.com/adenflorian/corgi.fm/pkg/arith"
	"github.com/adenflorian/corgi.fm/pkg/pitch"
)

//export add
func add(a, b int32) int32 {
	return arith.Add(a, b)
}

//export getFrequencyUsingHalfStepsFromA4
func getFrequencyUsingHalfStepsFromA4(halfSteps float64) float64 {
	return pitch.FrequencyFromHalfSteps(halfSteps)
}
