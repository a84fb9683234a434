package theory_go

// mod is the mathematical modulo. The result is non-negative for positive m,
// also when n is negative.
func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// floorDiv divides rounding toward negative infinity. m must be positive.
func floorDiv(n, m int) int {
	return (n - mod(n, m)) / m
}

// DiatonicValue is a 1-based count of scale degrees along the natural
// seven-letter scale. 1 is the first position and 8 is the same letter one
// octave up; zero and negative values are valid and sit below the reference
// octave.
type DiatonicValue int

// ChromaticValue is a 0-based count of semitones from the C of octave zero.
type ChromaticValue int

// DiatonicClass is a DiatonicValue reduced into one octave, range 1..7.
type DiatonicClass int

// ChromaticClass is a ChromaticValue reduced into one octave, range 0..11.
type ChromaticClass int

// diatonicToChromatic holds the chromatic class of each natural diatonic
// class, the major-scale skeleton. Every offset and quality computation is
// relative to this table.
var diatonicToChromatic = [7]ChromaticClass{0, 2, 4, 5, 7, 9, 11}

// Class reduces the value into the 1..7 range.
func (v DiatonicValue) Class() DiatonicClass {
	return DiatonicClass(mod(int(v)-1, 7) + 1)
}

// Octave returns the octave the value falls in. Octave 0 spans values 1..7.
func (v DiatonicValue) Octave() int {
	return floorDiv(int(v)-1, 7)
}

// Chromatic returns the natural chromatic value of the diatonic position,
// before any sharps or flats are applied.
func (v DiatonicValue) Chromatic() ChromaticValue {
	return ChromaticValue(v.Octave()*12 + int(diatonicToChromatic[v.Class()-1]))
}

// Add sums two 1-based values. Adding 1, a unison, is the identity.
func (v DiatonicValue) Add(o DiatonicValue) DiatonicValue {
	return v + o - 1
}

// Subtract undoes Add: v.Add(o).Subtract(o) == v.
func (v DiatonicValue) Subtract(o DiatonicValue) DiatonicValue {
	return v - o + 1
}

// Normalize reflects values below 1 back up, keeping 1 as the fixed point.
func (v DiatonicValue) Normalize() DiatonicValue {
	if v < 1 {
		return 2 - v
	}
	return v
}

// Class reduces the value into the 0..11 range.
func (v ChromaticValue) Class() ChromaticClass {
	return ChromaticClass(mod(int(v), 12))
}

// Octave returns the octave the value falls in. Octave 0 spans values 0..11.
func (v ChromaticValue) Octave() int {
	return floorDiv(int(v), 12)
}

// Normalize returns the magnitude of the value.
func (v ChromaticValue) Normalize() ChromaticValue {
	if v < 0 {
		return -v
	}
	return v
}
