package theory_go

import "fmt"

// QualityType classifies an interval quality.
type QualityType int

const (
	// Perfect is the quality of unaltered unisons, fourths and fifths.
	Perfect QualityType = iota
	// Major is the quality of unaltered seconds, thirds, sixths and sevenths.
	Major
	// Minor is a major-family interval one semitone short of major.
	Minor
	// Augmented is an interval stretched past its perfect or major size.
	Augmented
	// Diminished is an interval shrunk below its perfect or minor size.
	Diminished
)

// String returns a string representation of the QualityType.
func (t QualityType) String() string {
	switch t {
	case Perfect:
		return "perfect"
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Augmented:
		return "augmented"
	case Diminished:
		return "diminished"
	default:
		return "unknown"
	}
}

// IsAltered checks if the quality type carries an alteration depth.
func (t QualityType) IsAltered() bool {
	return t == Augmented || t == Diminished
}

// IntervalType is the family an interval number belongs to. The family
// decides which qualities the interval can take.
type IntervalType int

const (
	// PerfectType covers unisons, fourths, fifths and their compounds.
	PerfectType IntervalType = iota
	// MajorType covers seconds, thirds, sixths, sevenths and their compounds.
	MajorType
)

// String returns a string representation of the IntervalType.
func (t IntervalType) String() string {
	switch t {
	case PerfectType:
		return "perfect"
	case MajorType:
		return "major"
	default:
		return "unknown"
	}
}

// IntervalTypeOf returns the family of an interval number.
func IntervalTypeOf(number DiatonicValue) IntervalType {
	switch number.Class() {
	case 1, 4, 5:
		return PerfectType
	default:
		return MajorType
	}
}

// IntervalQuality is a quality type with an alteration depth. The
// coefficient matters only for augmented and diminished qualities: 1 is
// augmented, 2 doubly augmented, and so on.
type IntervalQuality struct {
	Type        QualityType
	Coefficient int
}

// The five base qualities, all with coefficient 1.
var (
	PerfectQuality    = NewQuality(Perfect)
	MajorQuality      = NewQuality(Major)
	MinorQuality      = NewQuality(Minor)
	AugmentedQuality  = NewQuality(Augmented)
	DiminishedQuality = NewQuality(Diminished)
)

// NewQuality builds a quality with an optional coefficient, defaulting to
// 1. The coefficient is pinned to 1 for perfect, major and minor, so equal
// qualities always compare equal as plain values.
func NewQuality(t QualityType, coefficient ...int) IntervalQuality {
	c := 1
	if len(coefficient) > 0 && t.IsAltered() && coefficient[0] > 1 {
		c = coefficient[0]
	}
	return IntervalQuality{Type: t, Coefficient: c}
}

// Is checks if the quality is of the given type.
func (q IntervalQuality) Is(t QualityType) bool {
	return q.Type == t
}

// QualityForOffset returns the canonical quality of an interval in the
// given family sitting offset semitones away from its natural size. An
// IntervalType outside the two families yields a *QualityOffsetError.
func QualityForOffset(t IntervalType, offset int) (IntervalQuality, error) {
	switch t {
	case PerfectType:
		switch {
		case offset == 0:
			return PerfectQuality, nil
		case offset > 0:
			return NewQuality(Augmented, offset), nil
		default:
			return NewQuality(Diminished, -offset), nil
		}
	case MajorType:
		switch {
		case offset == 0:
			return MajorQuality, nil
		case offset > 0:
			return NewQuality(Augmented, offset), nil
		case offset == -1:
			return MinorQuality, nil
		default:
			return NewQuality(Diminished, -offset-1), nil
		}
	default:
		return IntervalQuality{}, &QualityOffsetError{Type: t, Offset: offset}
	}
}

// ChromaticOffset returns the signed semitone deviation from the natural
// size that the quality produces on an interval of the given family. A
// quality the family does not allow yields a *QualityMismatchError.
func (q IntervalQuality) ChromaticOffset(t IntervalType) (int, error) {
	switch t {
	case PerfectType:
		switch q.Type {
		case Perfect:
			return 0, nil
		case Augmented:
			return q.Coefficient, nil
		case Diminished:
			return -q.Coefficient, nil
		}
	case MajorType:
		switch q.Type {
		case Major:
			return 0, nil
		case Minor:
			return -1, nil
		case Augmented:
			return q.Coefficient, nil
		case Diminished:
			return -(q.Coefficient + 1), nil
		}
	}
	return 0, &QualityMismatchError{Quality: q, Type: t}
}

// String spells out the quality, e.g. "major" or "doubly diminished".
func (q IntervalQuality) String() string {
	if q.Type.IsAltered() && q.Coefficient > 1 {
		return fmt.Sprintf("%s %s", multiplier(q.Coefficient), q.Type)
	}
	return q.Type.String()
}

// multiplier names an alteration depth beyond single.
func multiplier(c int) string {
	switch c {
	case 2:
		return "doubly"
	case 3:
		return "triply"
	default:
		return fmt.Sprintf("%d-fold", c)
	}
}
