// this example prints an equal temperament tuning table for a major scale
// around concert A.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MegaLoler/theory_go"
	"github.com/MegaLoler/theory_go/midi"
	// goerror is not a part of the theory library, it just shortens error handling here.
	"github.com/denizsincar29/goerror"
)

func main() {
	logger := NewLogger(os.Stdout, slog.LevelWarn)
	e := goerror.NewError(logger)

	root := theory_go.NewNote(theory_go.NewPitchClass(theory_go.A), 4)
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

	fmt.Println("A major, A4 =", midi.Frequency(root), "Hz")
	for _, s := range steps {
		iv, err := theory_go.NewInterval(s.number, s.quality)
		e.Must(err, "Failed to build a scale step")
		note := root.Above(iv)
		key, err := midi.Key(note)
		e.Must(err, "Note fell off the MIDI keyboard")
		fmt.Printf("%-4s key %3d (%-4s) %8.2f Hz\n", note, key, midi.KeyName(key), midi.Frequency(note))
	}
}
