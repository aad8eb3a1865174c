// Package pitch converts between semitone offsets, MIDI note numbers and
// frequencies in twelve-tone equal temperament tuned to A4 = 440 Hz.
//
// [FrequencyFromHalfSteps] is the function behind the exported
// "getFrequencyUsingHalfStepsFromA4" symbol. It raises the precomputed
// twelfth root of two ([SemitoneRatio]) to the requested power and scales
// the result by [ReferenceFrequency]:
//
//	pitch.FrequencyFromHalfSteps(0)  // 440
//	pitch.FrequencyFromHalfSteps(12) // 880
//	pitch.FrequencyFromHalfSteps(-9) // middle C, ~261.63
//
// Fractional offsets are microtonal. Non-finite input propagates through
// math.Pow unchanged; nothing is rejected.
//
// The MIDI helpers ([MIDINoteToFrequency], [Octave], [NoteName], [Color])
// treat note 69 as A4 and note 60 as middle C.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package pitch
