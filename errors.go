package theory_go

import "fmt"

// QualityOffsetError is returned when a quality is requested for an
// interval family that does not exist.
type QualityOffsetError struct {
	Type   IntervalType
	Offset int
}

func (e *QualityOffsetError) Error() string {
	return fmt.Sprintf("no quality at offset %d for interval type %d", e.Offset, int(e.Type))
}

// QualityMismatchError is returned when a quality is paired with an
// interval family that does not allow it, e.g. a minor fifth.
type QualityMismatchError struct {
	Quality IntervalQuality
	Type    IntervalType
}

func (e *QualityMismatchError) Error() string {
	return fmt.Sprintf("%s quality is not valid for a %s-family interval", e.Quality, e.Type)
}
