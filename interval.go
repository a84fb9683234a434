package theory_go

import (
	"fmt"

	"github.com/heucuva/comparison"
)

// Interval is a diatonic distance with a quality. The number is 1-based: 1
// is a unison, 5 a fifth, 8 an octave, 12 a compound fifth. Numbers at or
// below zero appear transiently from Note.Difference when the target note
// lies below; Normalize turns them ascending.
type Interval struct {
	Number  DiatonicValue
	Quality IntervalQuality
}

// perfectOctave is the reference interval Invert works against.
var perfectOctave = Interval{Number: 8, Quality: PerfectQuality}

// NewInterval builds an interval, rejecting a quality outside the number's
// family: perfect-family numbers take perfect, augmented or diminished,
// major-family numbers take major, minor, augmented or diminished. The
// rejection is a *QualityMismatchError.
func NewInterval(number DiatonicValue, q IntervalQuality) (Interval, error) {
	if _, err := q.ChromaticOffset(IntervalTypeOf(number)); err != nil {
		return Interval{}, err
	}
	return Interval{Number: number, Quality: q}, nil
}

// IntervalFromChromatic builds the interval with the given number whose
// quality makes its chromatic size equal the target. All interval
// arithmetic funnels through this factory.
func IntervalFromChromatic(number DiatonicValue, target ChromaticValue) Interval {
	q, err := QualityForOffset(IntervalTypeOf(number), int(target-number.Chromatic()))
	if err != nil {
		// both families map every offset to a quality
		panic(err)
	}
	return Interval{Number: number, Quality: q}
}

// Class reduces the number into the 1..7 range.
func (iv Interval) Class() DiatonicClass {
	return iv.Number.Class()
}

// Type returns the family the number belongs to.
func (iv Interval) Type() IntervalType {
	return IntervalTypeOf(iv.Number)
}

// ChromaticOffset returns the signed semitone deviation from the number's
// natural size. Intervals built through NewInterval or the factories always
// carry a compatible quality; a hand-assembled incompatible pair panics
// with the mismatch error instead of returning an undefined offset.
func (iv Interval) ChromaticOffset() int {
	offset, err := iv.Quality.ChromaticOffset(iv.Type())
	if err != nil {
		panic(err)
	}
	return offset
}

// ChromaticValue returns the span of the interval in semitones.
func (iv Interval) ChromaticValue() ChromaticValue {
	return iv.Number.Chromatic() + ChromaticValue(iv.ChromaticOffset())
}

// Add returns the interval spanning this interval followed by other.
func (iv Interval) Add(other Interval) Interval {
	return IntervalFromChromatic(
		iv.Number.Add(other.Number),
		iv.ChromaticValue()+other.ChromaticValue(),
	)
}

// Subtract returns the interval left when other is taken off this one.
func (iv Interval) Subtract(other Interval) Interval {
	return IntervalFromChromatic(
		iv.Number.Subtract(other.Number),
		iv.ChromaticValue()-other.ChromaticValue(),
	)
}

// Reduce collapses a compound interval to its simple equivalent within one
// octave. An interval already inside the octave comes back unchanged.
func (iv Interval) Reduce() Interval {
	return IntervalFromChromatic(
		DiatonicValue(iv.Class()),
		ChromaticValue(iv.ChromaticValue().Class()),
	)
}

// Normalize coerces a descending interval into the ascending interval of
// the same span. Direction is discarded, not kept as a sign.
func (iv Interval) Normalize() Interval {
	return IntervalFromChromatic(
		iv.Number.Normalize(),
		iv.ChromaticValue().Normalize(),
	)
}

// Invert returns the interval's complement within an octave: a major third
// inverts to a minor sixth, a fourth to a fifth.
func (iv Interval) Invert() Interval {
	return iv.Subtract(perfectOctave).Normalize()
}

// Compare orders intervals by semitone span, equal spans by number.
func (iv Interval) Compare(other Interval) comparison.Spaceship {
	switch {
	case iv.ChromaticValue() < other.ChromaticValue():
		return comparison.SpaceshipRightGreater
	case iv.ChromaticValue() > other.ChromaticValue():
		return comparison.SpaceshipLeftGreater
	case iv.Number < other.Number:
		return comparison.SpaceshipRightGreater
	case iv.Number > other.Number:
		return comparison.SpaceshipLeftGreater
	default:
		return comparison.SpaceshipEqual
	}
}

// String spells the interval, e.g. "perfect 5th" or "augmented 12th".
func (iv Interval) String() string {
	return fmt.Sprintf("%s %s", iv.Quality, numberName(iv.Number))
}

// numberName renders an interval number, with the two conventional names.
func numberName(n DiatonicValue) string {
	switch n {
	case 1:
		return "unison"
	case 8:
		return "octave"
	}
	suffix := "th"
	switch {
	case mod(int(n), 100) >= 11 && mod(int(n), 100) <= 13:
	case mod(int(n), 10) == 1:
		suffix = "st"
	case mod(int(n), 10) == 2:
		suffix = "nd"
	case mod(int(n), 10) == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", int(n), suffix)
}
