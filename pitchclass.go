package theory_go

import "strings"

// PitchClass is a letter name plus a chromatic offset, independent of
// octave. A positive offset is a count of sharps, a negative one a count of
// flats.
type PitchClass struct {
	Letter LetterName
	Offset int
}

// NewPitchClass builds a pitch class from a letter and an optional
// chromatic offset. The offset defaults to 0, a natural.
func NewPitchClass(letter LetterName, offset ...int) PitchClass {
	o := 0
	if len(offset) > 0 {
		o = offset[0]
	}
	return PitchClass{Letter: letter, Offset: o}
}

// PitchClassFromDiatonic builds the pitch class whose letter sits at the
// diatonic class of v, with an optional offset.
func PitchClassFromDiatonic(v DiatonicValue, offset ...int) PitchClass {
	return NewPitchClass(LetterFromDiatonic(v), offset...)
}

// PitchClassFromValues solves for the spelling at the given diatonic value
// whose chromatic value equals the target: the offset is however many
// semitones the target sits away from the letter's natural pitch.
func PitchClassFromValues(d DiatonicValue, c ChromaticValue) PitchClass {
	return PitchClassFromDiatonic(d, int(c-d.Chromatic()))
}

// DiatonicValue returns the letter's diatonic value.
func (pc PitchClass) DiatonicValue() DiatonicValue {
	return pc.Letter.DiatonicValue()
}

// ChromaticValue returns the letter's natural chromatic value with the
// offset applied.
func (pc PitchClass) ChromaticValue() ChromaticValue {
	return pc.Letter.ChromaticValue() + ChromaticValue(pc.Offset)
}

// String returns the spelled pitch class, e.g. "C", "G#", "Bb" or "F##".
func (pc PitchClass) String() string {
	if pc.Offset > 0 {
		return pc.Letter.String() + strings.Repeat("#", pc.Offset)
	}
	return pc.Letter.String() + strings.Repeat("b", -pc.Offset)
}
