// github.com/MegaLoler/theory_go/midi/midi.go
package midi

import (
	"fmt"
	"math"

	"github.com/MegaLoler/theory_go"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// KEY_OFFSET is the distance from a chromatic value to its MIDI key: key 0
// is the C an octave below the library's chromatic zero, so middle C
// (chromatic 48) lands on key 60.
const KEY_OFFSET = 12

// KEY_A4 is the MIDI key of the tuning reference A.
const KEY_A4 = 69

// CONCERT_PITCH is the frequency of A4 in Hz.
const CONCERT_PITCH = 440.0

// KeyRangeError is returned for notes outside the 128-key MIDI range.
type KeyRangeError struct {
	Note theory_go.Note
	Key  int
}

func (e *KeyRangeError) Error() string {
	return fmt.Sprintf("note %s maps to MIDI key %d, outside 0..127", e.Note, e.Key)
}

// Key returns the MIDI key number of a note.
func Key(n theory_go.Note) (uint8, error) {
	k := int(n.ChromaticValue()) + KEY_OFFSET
	if k < 0 || k > 127 {
		return 0, &KeyRangeError{Note: n, Key: k}
	}
	return uint8(k), nil
}

// MustKey is Key for notes known to sit in range, panicking otherwise.
func MustKey(n theory_go.Note) uint8 {
	k, err := Key(n)
	if err != nil {
		panic(err)
	}
	return k
}

// keyNames spells the twelve chromatic classes, sharps only: a raw key
// carries no information about how a note was spelled.
var keyNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// KeyName renders a raw MIDI key, e.g. 61 is "C#4".
func KeyName(key uint8) string {
	return fmt.Sprintf("%s%d", keyNames[key%12], int(key)/12-1)
}

// Frequency returns the equal-temperament frequency of a note, with A4 at
// concert pitch.
func Frequency(n theory_go.Note) float64 {
	key := int(n.ChromaticValue()) + KEY_OFFSET
	return CONCERT_PITCH * math.Pow(2, float64(key-KEY_A4)/12.0)
}

// NoteOn builds a note-on message for the note on the given channel.
func NoteOn(channel uint8, n theory_go.Note, velocity uint8) (gomidi.Message, error) {
	key, err := Key(n)
	if err != nil {
		return nil, err
	}
	return gomidi.NoteOn(channel, key, velocity), nil
}

// NoteOff builds the matching note-off message.
func NoteOff(channel uint8, n theory_go.Note) (gomidi.Message, error) {
	key, err := Key(n)
	if err != nil {
		return nil, err
	}
	return gomidi.NoteOff(channel, key), nil
}

// Transpose shifts a note-on or note-off message by the interval's semitone
// span and hands every other message back untouched.
func Transpose(msg gomidi.Message, iv theory_go.Interval) gomidi.Message {
	var ch, key, vel uint8
	if msg.GetNoteOn(&ch, &key, &vel) {
		return gomidi.NoteOn(ch, shift(key, iv), vel)
	}
	if msg.GetNoteEnd(&ch, &key) {
		return gomidi.NoteOff(ch, shift(key, iv))
	}
	return msg
}

// shift moves a key by the interval's span, clamped to the key space.
func shift(key uint8, iv theory_go.Interval) uint8 {
	k := int(key) + int(iv.ChromaticValue())
	if k < 0 {
		k = 0
	}
	if k > 127 {
		k = 127
	}
	return uint8(k)
}
