package pitch

// Name is a pitch-class name spelled with sharps.
type Name string

const (
	C      Name = "C"
	CSharp Name = "C#"
	D      Name = "D"
	DSharp Name = "D#"
	E      Name = "E"
	F      Name = "F"
	FSharp Name = "F#"
	G      Name = "G"
	GSharp Name = "G#"
	A      Name = "A"
	ASharp Name = "A#"
	B      Name = "B"
)

// KeyColor is the colour of a key on a piano keyboard.
type KeyColor string

const (
	White KeyColor = "white"
	Black KeyColor = "black"
)

// Key describes one pitch class on the keyboard.
type Key struct {
	Name  Name     `json:"name"`
	Color KeyColor `json:"color"`
}

// keys is indexed by pitch class, C = 0.
var keys = [SemitonesPerOctave]Key{
	{C, White},
	{CSharp, Black},
	{D, White},
	{DSharp, Black},
	{E, White},
	{F, White},
	{FSharp, Black},
	{G, White},
	{GSharp, Black},
	{A, White},
	{ASharp, Black},
	{B, White},
}

// ApplyOctave moves a pitch class into the given octave, where octave 4
// holds A4 (scientific pitch notation). An octave of -1 leaves the note
// unchanged.
//
// The numbering is one lower than [Octave]: ApplyOctave(PitchClass(A4), 4)
// == A4 while Octave(A4) == 5, so ApplyOctave(PitchClass(n), Octave(n)-1)
// == n.
func ApplyOctave(note, octave int) int {
	if octave == -1 {
		return note
	}
	return note + octave*SemitonesPerOctave + SemitonesPerOctave
}

// RemoveOctave returns note % 12. The result carries the sign of note;
// use PitchClass for a value that is always in [0, 12).
func RemoveOctave(note int) int {
	return note % SemitonesPerOctave
}

// PitchClass returns the pitch class of note in [0, 12), with C = 0.
func PitchClass(note int) int {
	return ((note % SemitonesPerOctave) + SemitonesPerOctave) % SemitonesPerOctave
}

// Octave returns floor(note / 12). This counts from MIDI note 0, so it is
// one higher than scientific pitch notation: Octave(A4) == 5. Subtract one
// before passing the result to [ApplyOctave].
func Octave(note int) int {
	o := note / SemitonesPerOctave
	if note%SemitonesPerOctave != 0 && note < 0 {
		o--
	}
	return o
}

// KeyOf returns the keyboard key for a MIDI note number.
func KeyOf(note int) Key {
	return keys[PitchClass(note)]
}

// NoteName returns the sharp-spelled name of a MIDI note number.
func NoteName(note int) Name {
	return KeyOf(note).Name
}

// Color returns whether a MIDI note number falls on a white or black key.
func Color(note int) KeyColor {
	return KeyOf(note).Color
}
