package theory_go

import (
	"errors"
	"testing"
)

func TestIntervalTypeOf(t *testing.T) {
	perfectNumbers := []DiatonicValue{1, 4, 5, 8, 11, 12, -3}
	majorNumbers := []DiatonicValue{2, 3, 6, 7, 9, 10, 13}
	for _, n := range perfectNumbers {
		if got := IntervalTypeOf(n); got != PerfectType {
			t.Errorf("IntervalTypeOf(%d) = %s, want perfect", n, got)
		}
	}
	for _, n := range majorNumbers {
		if got := IntervalTypeOf(n); got != MajorType {
			t.Errorf("IntervalTypeOf(%d) = %s, want major", n, got)
		}
	}
}

func TestNewQuality(t *testing.T) {
	tests := []struct {
		name string
		got  IntervalQuality
		want IntervalQuality
	}{
		{"default coefficient", NewQuality(Augmented), IntervalQuality{Augmented, 1}},
		{"explicit coefficient", NewQuality(Diminished, 3), IntervalQuality{Diminished, 3}},
		{"coefficient pinned for major", NewQuality(Major, 4), IntervalQuality{Major, 1}},
		{"coefficient pinned for perfect", NewQuality(Perfect, 2), IntervalQuality{Perfect, 1}},
		{"coefficient floored at 1", NewQuality(Augmented, 0), IntervalQuality{Augmented, 1}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestBaseQualities(t *testing.T) {
	bases := []struct {
		q        IntervalQuality
		qt       QualityType
		wantText string
	}{
		{PerfectQuality, Perfect, "perfect"},
		{MajorQuality, Major, "major"},
		{MinorQuality, Minor, "minor"},
		{AugmentedQuality, Augmented, "augmented"},
		{DiminishedQuality, Diminished, "diminished"},
	}
	for _, tt := range bases {
		if !tt.q.Is(tt.qt) || tt.q.Coefficient != 1 {
			t.Errorf("base quality %+v: want type %s with coefficient 1", tt.q, tt.qt)
		}
		if got := tt.q.String(); got != tt.wantText {
			t.Errorf("String() = %s, want %s", got, tt.wantText)
		}
	}
}

func TestQualityForOffset_PerfectFamily(t *testing.T) {
	tests := []struct {
		offset int
		want   IntervalQuality
	}{
		{0, PerfectQuality},
		{1, NewQuality(Augmented, 1)},
		{2, NewQuality(Augmented, 2)},
		{-1, NewQuality(Diminished, 1)},
		{-3, NewQuality(Diminished, 3)},
	}
	for _, tt := range tests {
		got, err := QualityForOffset(PerfectType, tt.offset)
		if err != nil {
			t.Fatalf("QualityForOffset(perfect, %d) error = %v", tt.offset, err)
		}
		if got != tt.want {
			t.Errorf("QualityForOffset(perfect, %d) = %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}

func TestQualityForOffset_MajorFamily(t *testing.T) {
	tests := []struct {
		offset int
		want   IntervalQuality
	}{
		{0, MajorQuality},
		{1, NewQuality(Augmented, 1)},
		{3, NewQuality(Augmented, 3)},
		{-1, MinorQuality},
		{-2, NewQuality(Diminished, 1)},
		{-4, NewQuality(Diminished, 3)},
	}
	for _, tt := range tests {
		got, err := QualityForOffset(MajorType, tt.offset)
		if err != nil {
			t.Fatalf("QualityForOffset(major, %d) error = %v", tt.offset, err)
		}
		if got != tt.want {
			t.Errorf("QualityForOffset(major, %d) = %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}

func TestQualityForOffset_UnknownType(t *testing.T) {
	_, err := QualityForOffset(IntervalType(7), 1)
	if err == nil {
		t.Fatal("expected error for an unknown interval type, got nil")
	}
	var qe *QualityOffsetError
	if !errors.As(err, &qe) {
		t.Fatalf("error type = %T, want *QualityOffsetError", err)
	}
	if qe.Type != IntervalType(7) || qe.Offset != 1 {
		t.Errorf("error fields = %+v, want type 7 offset 1", qe)
	}
}

func TestChromaticOffset(t *testing.T) {
	tests := []struct {
		q    IntervalQuality
		t    IntervalType
		want int
	}{
		{PerfectQuality, PerfectType, 0},
		{NewQuality(Augmented, 1), PerfectType, 1},
		{NewQuality(Augmented, 2), PerfectType, 2},
		{NewQuality(Diminished, 1), PerfectType, -1},
		{NewQuality(Diminished, 2), PerfectType, -2},
		{MajorQuality, MajorType, 0},
		{MinorQuality, MajorType, -1},
		{NewQuality(Augmented, 2), MajorType, 2},
		{NewQuality(Diminished, 1), MajorType, -2},
		{NewQuality(Diminished, 3), MajorType, -4},
	}
	for _, tt := range tests {
		got, err := tt.q.ChromaticOffset(tt.t)
		if err != nil {
			t.Fatalf("%s.ChromaticOffset(%s) error = %v", tt.q, tt.t, err)
		}
		if got != tt.want {
			t.Errorf("%s.ChromaticOffset(%s) = %d, want %d", tt.q, tt.t, got, tt.want)
		}
	}
}

// QualityForOffset and ChromaticOffset are inverses on both families.
func TestQualityOffsetRoundTrip(t *testing.T) {
	for _, family := range []IntervalType{PerfectType, MajorType} {
		for offset := -5; offset <= 5; offset++ {
			q, err := QualityForOffset(family, offset)
			if err != nil {
				t.Fatalf("QualityForOffset(%s, %d) error = %v", family, offset, err)
			}
			back, err := q.ChromaticOffset(family)
			if err != nil {
				t.Fatalf("%s.ChromaticOffset(%s) error = %v", q, family, err)
			}
			if back != offset {
				t.Errorf("offset %d on %s family came back as %d via %s", offset, family, back, q)
			}
		}
	}
}

func TestChromaticOffset_Mismatch(t *testing.T) {
	tests := []struct {
		q IntervalQuality
		t IntervalType
	}{
		{MinorQuality, PerfectType},
		{MajorQuality, PerfectType},
		{PerfectQuality, MajorType},
	}
	for _, tt := range tests {
		_, err := tt.q.ChromaticOffset(tt.t)
		if err == nil {
			t.Fatalf("%s on %s family: expected error, got nil", tt.q, tt.t)
		}
		var me *QualityMismatchError
		if !errors.As(err, &me) {
			t.Fatalf("error type = %T, want *QualityMismatchError", err)
		}
		if me.Quality != tt.q || me.Type != tt.t {
			t.Errorf("error fields = %+v, want quality %s type %s", me, tt.q, tt.t)
		}
	}
}

func TestQualityString(t *testing.T) {
	tests := []struct {
		q    IntervalQuality
		want string
	}{
		{NewQuality(Augmented, 2), "doubly augmented"},
		{NewQuality(Diminished, 3), "triply diminished"},
		{NewQuality(Diminished, 5), "5-fold diminished"},
		{MinorQuality, "minor"},
	}
	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}

func TestQualityTypeIsAltered(t *testing.T) {
	if !Augmented.IsAltered() || !Diminished.IsAltered() {
		t.Error("augmented and diminished carry an alteration depth")
	}
	if Perfect.IsAltered() || Major.IsAltered() || Minor.IsAltered() {
		t.Error("perfect, major and minor take no alteration depth")
	}
}
