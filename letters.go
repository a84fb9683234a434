package theory_go

// LetterName is one of the seven diatonic letter identities. The constants
// are the process-wide singletons; their value is the letter's diatonic
// class.
type LetterName int

const (
	C LetterName = iota + 1
	D
	E
	F
	G
	A
	B
)

// Letters holds the seven letter names in diatonic order.
var Letters = [7]LetterName{C, D, E, F, G, A, B}

// LetterFromDiatonic returns the letter at the diatonic class of v. Any
// integer input is valid.
func LetterFromDiatonic(v DiatonicValue) LetterName {
	return LetterName(v.Class())
}

// DiatonicValue returns the letter's scale position, 1 for C through 7 for B.
func (l LetterName) DiatonicValue() DiatonicValue {
	return DiatonicValue(l)
}

// ChromaticValue returns the letter's natural semitone position, 0 for C
// through 11 for B.
func (l LetterName) ChromaticValue() ChromaticValue {
	return l.DiatonicValue().Chromatic()
}

// String returns the letter as written.
func (l LetterName) String() string {
	switch l {
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case F:
		return "F"
	case G:
		return "G"
	case A:
		return "A"
	case B:
		return "B"
	default:
		return "unknown"
	}
}
