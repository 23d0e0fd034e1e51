package audio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NoteFrequencies contains precomputed frequencies for MIDI notes 0-127
// A4 (note 69) = 440Hz, equal temperament
var NoteFrequencies [128]float64

func init() {
	for i := range NoteFrequencies {
		NoteFrequencies[i] = 440.0 * math.Pow(2, (float64(i)-69.0)/12.0)
	}
}

// NoteFreq returns frequency in Hz for MIDI note number, 0 when out of range
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= len(NoteFrequencies) {
		return 0
	}
	return NoteFrequencies[midi]
}

var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// ParseNote converts scientific pitch notation ("C4", "F#5", "Bb3") to a MIDI number
func ParseNote(name string) (int, error) {
	s := strings.TrimSpace(name)
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}

	base, ok := semitones[s[0]&^0x20] // upper-case
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}
	s = s[1:]

	switch s[0] {
	case '#':
		base++
		s = s[1:]
	case 'b':
		base--
		s = s[1:]
	}

	octave, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: octave: %v", ErrInvalidNote, name, err)
	}

	midi := (octave+1)*12 + base
	if midi < 0 || midi >= len(NoteFrequencies) {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidNote, name)
	}
	return midi, nil
}
