package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOctave(t *testing.T) {
	tests := []struct {
		name     string
		note     int
		octave   int
		expected int
	}{
		{"no octave", 9, -1, 9},
		{"A in octave 4", 9, 4, A4},
		{"C in octave 4", 0, 4, 60},
		{"C in octave 0", 0, 0, 12},
		{"B in octave 9", 11, 9, 131},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyOctave(tt.note, tt.octave))
		})
	}
}

func TestApplyOctave_OctaveNumbering(t *testing.T) {
	assert.Equal(t, A4, ApplyOctave(PitchClass(A4), 4))
	assert.Equal(t, 5, Octave(A4))

	for n := 0; n < 128; n++ {
		assert.Equal(t, n, ApplyOctave(PitchClass(n), Octave(n)-1), "note %d", n)
	}
}

func TestRemoveOctave(t *testing.T) {
	assert.Equal(t, 9, RemoveOctave(A4))
	assert.Equal(t, 0, RemoveOctave(60))
	assert.Equal(t, -1, RemoveOctave(-1))
}

func TestPitchClass(t *testing.T) {
	tests := []struct {
		note     int
		expected int
	}{
		{0, 0},
		{A4, 9},
		{127, 7},
		{-1, 11},
		{-12, 0},
		{-13, 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PitchClass(tt.note), "PitchClass(%d)", tt.note)
	}
}

func TestOctave(t *testing.T) {
	tests := []struct {
		note     int
		expected int
	}{
		{0, 0},
		{11, 0},
		{12, 1},
		{60, 5},
		{A4, 5},
		{-1, -1},
		{-12, -1},
		{-13, -2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Octave(tt.note), "Octave(%d)", tt.note)
	}
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		note  int
		name  Name
		color KeyColor
	}{
		{60, C, White},
		{61, CSharp, Black},
		{64, E, White},
		{65, F, White},
		{66, FSharp, Black},
		{A4, A, White},
		{70, ASharp, Black},
		{71, B, White},
		{-1, B, White},
		{-2, ASharp, Black},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			key := KeyOf(tt.note)
			assert.Equal(t, tt.name, key.Name)
			assert.Equal(t, tt.color, key.Color)
			assert.Equal(t, tt.name, NoteName(tt.note))
			assert.Equal(t, tt.color, Color(tt.note))
		})
	}
}

func TestKeyboardHasSevenWhiteKeys(t *testing.T) {
	white := 0
	for pc := 0; pc < SemitonesPerOctave; pc++ {
		if Color(pc) == White {
			white++
		}
	}
	assert.Equal(t, 7, white)
}
