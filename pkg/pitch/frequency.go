package pitch

import "math"

const (
	// ReferenceFrequency is the frequency of A4 in Hz.
	ReferenceFrequency = 440.0

	// SemitonesPerOctave is the number of equal steps in one octave.
	SemitonesPerOctave = 12

	// A4 is the MIDI note number of the reference pitch.
	A4 = 69
)

// SemitoneRatio is the frequency ratio between adjacent semitones, 2^(1/12).
var SemitoneRatio = math.Pow(2, 1.0/SemitonesPerOctave)

// FrequencyFromHalfSteps returns the frequency in Hz of the pitch halfSteps
// semitones away from A4.
func FrequencyFromHalfSteps(halfSteps float64) float64 {
	return ReferenceFrequency * math.Pow(SemitoneRatio, halfSteps)
}

// MIDINoteToFrequency returns the frequency in Hz of a MIDI note number.
func MIDINoteToFrequency(note int) float64 {
	return FrequencyFromHalfSteps(float64(note - A4))
}
