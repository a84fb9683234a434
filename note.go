package theory_go

import (
	"fmt"

	"github.com/heucuva/comparison"
)

// DEFAULT_OCTAVE is the octave notes land in when none is given.
const DEFAULT_OCTAVE = 4

// Note is a pitch class fixed to an octave.
type Note struct {
	PitchClass PitchClass
	Octave     int
}

// NewNote builds a note from a pitch class and an optional octave. The
// octave defaults to DEFAULT_OCTAVE.
func NewNote(pc PitchClass, octave ...int) Note {
	o := DEFAULT_OCTAVE
	if len(octave) > 0 {
		o = octave[0]
	}
	return Note{PitchClass: pc, Octave: o}
}

// NoteFromValues builds the note at the given absolute diatonic and
// chromatic positions. The diatonic value fixes the octave and letter; the
// chromatic value left inside that octave fixes the offset.
func NoteFromValues(d DiatonicValue, c ChromaticValue) Note {
	octave := d.Octave()
	pc := PitchClassFromValues(DiatonicValue(d.Class()), c-ChromaticValue(octave*12))
	return Note{PitchClass: pc, Octave: octave}
}

// DiatonicValue returns the note's absolute diatonic position.
func (n Note) DiatonicValue() DiatonicValue {
	return n.PitchClass.DiatonicValue() + DiatonicValue(n.Octave*7)
}

// ChromaticValue returns the note's absolute semitone position.
func (n Note) ChromaticValue() ChromaticValue {
	return n.PitchClass.ChromaticValue() + ChromaticValue(n.Octave*12)
}

// Above returns the note the given interval higher.
func (n Note) Above(iv Interval) Note {
	return NoteFromValues(
		n.DiatonicValue().Add(iv.Number),
		n.ChromaticValue()+iv.ChromaticValue(),
	)
}

// Below returns the note the given interval lower.
func (n Note) Below(iv Interval) Note {
	return NoteFromValues(
		n.DiatonicValue().Subtract(iv.Number),
		n.ChromaticValue()-iv.ChromaticValue(),
	)
}

// Difference returns the interval leading from this note to other. When
// other sits below this note the result carries a non-positive number;
// Normalize it to get the ascending form.
func (n Note) Difference(other Note) Interval {
	return IntervalFromChromatic(
		other.DiatonicValue().Subtract(n.DiatonicValue()),
		other.ChromaticValue()-n.ChromaticValue(),
	)
}

// Compare orders notes by sounding pitch, enharmonic spellings by their
// diatonic position.
func (n Note) Compare(other Note) comparison.Spaceship {
	switch {
	case n.ChromaticValue() < other.ChromaticValue():
		return comparison.SpaceshipRightGreater
	case n.ChromaticValue() > other.ChromaticValue():
		return comparison.SpaceshipLeftGreater
	case n.DiatonicValue() < other.DiatonicValue():
		return comparison.SpaceshipRightGreater
	case n.DiatonicValue() > other.DiatonicValue():
		return comparison.SpaceshipLeftGreater
	default:
		return comparison.SpaceshipEqual
	}
}

// String returns the note in scientific pitch notation, e.g. "C4" or "G#5".
func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.PitchClass, n.Octave)
}
