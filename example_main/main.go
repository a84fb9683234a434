// this is a main example package for the theory library.
// Use this package to poke at the pitch arithmetic from a terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MegaLoler/theory_go"
	// goerror is not a part of the theory library, it just shortens error handling here.
	"github.com/denizsincar29/goerror"
)

func main() {
	logger := NewLogger(os.Stdout, slog.LevelInfo)
	e := goerror.NewError(logger)

	tonic := theory_go.NewNote(theory_go.NewPitchClass(theory_go.C), 4)
	logger.Info("starting from middle C", "note", tonic, "diatonic", tonic.DiatonicValue(), "chromatic", tonic.ChromaticValue())

	// spell the major scale as intervals above the tonic
	steps := []struct {
		number  theory_go.DiatonicValue
		quality theory_go.IntervalQuality
	}{
		{1, theory_go.PerfectQuality},
		{2, theory_go.MajorQuality},
		{3, theory_go.MajorQuality},
		{4, theory_go.PerfectQuality},
		{5, theory_go.PerfectQuality},
		{6, theory_go.MajorQuality},
		{7, theory_go.MajorQuality},
		{8, theory_go.PerfectQuality},
	}
	fmt.Print("major scale:")
	for _, s := range steps {
		iv, err := theory_go.NewInterval(s.number, s.quality)
		e.Must(err, "Failed to build a scale step")
		fmt.Print(" ", tonic.Above(iv))
	}
	fmt.Println()

	// the distance to a note in another octave
	target := theory_go.NewNote(theory_go.NewPitchClass(theory_go.G, 1), 5)
	diff := tonic.Difference(target)
	fmt.Println("from", tonic, "to", target, "is an", diff)
	fmt.Println("inside one octave that is an", diff.Reduce())

	// interval algebra
	third, err := theory_go.NewInterval(3, theory_go.MajorQuality)
	e.Must(err, "Failed to build a major third")
	fifth, err := theory_go.NewInterval(5, theory_go.PerfectQuality)
	e.Must(err, "Failed to build a perfect fifth")
	fmt.Println("a", third, "and a", fifth.Subtract(third), "stack into a", third.Add(fifth.Subtract(third)))
	fmt.Println("a", third, "inverts to a", third.Invert())

	// a minor fifth does not exist
	if _, err := theory_go.NewInterval(5, theory_go.MinorQuality); err != nil {
		logger.Warn("rejected an impossible interval", "error", err)
	}
}
