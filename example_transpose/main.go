// this example builds a short melody as MIDI messages and transposes it.
// No port is opened, the messages are only printed.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MegaLoler/theory_go"
	"github.com/MegaLoler/theory_go/midi"
	// goerror is not a part of the theory library, it just shortens error handling here.
	"github.com/denizsincar29/goerror"
	gomidi "gitlab.com/gomidi/midi/v2"
)

func main() {
	logger := NewLogger(os.Stdout, slog.LevelInfo)
	e := goerror.NewError(logger)

	melody := []theory_go.Note{
		theory_go.NewNote(theory_go.NewPitchClass(theory_go.C), 4),
		theory_go.NewNote(theory_go.NewPitchClass(theory_go.E), 4),
		theory_go.NewNote(theory_go.NewPitchClass(theory_go.G), 4),
		theory_go.NewNote(theory_go.NewPitchClass(theory_go.B, -1), 4),
	}

	var messages []gomidi.Message
	for _, n := range melody {
		on, err := midi.NoteOn(0, n, 96)
		e.Must(err, "Failed to build a note-on message")
		off, err := midi.NoteOff(0, n)
		e.Must(err, "Failed to build a note-off message")
		messages = append(messages, on, off)
		logger.Info("note", "spelled", n, "key", midi.MustKey(n), "freq", fmt.Sprintf("%.2f", midi.Frequency(n)))
	}

	fourth, err := theory_go.NewInterval(4, theory_go.PerfectQuality)
	e.Must(err, "Failed to build a perfect fourth")

	fmt.Println("melody up a", fourth, ":")
	for _, msg := range messages {
		up := midi.Transpose(msg, fourth)
		fmt.Println(" ", up.String())
	}
}
