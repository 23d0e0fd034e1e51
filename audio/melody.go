package audio

import (
	"fmt"
	"time"

	"github.com/lixenwraith/celebrate/parameter"
)

// Note is one melody step; an empty Pitch is a rest
type Note struct {
	Pitch string
	Beats float64
}

// Melody is an ordered list of notes
type Melody struct {
	Name  string
	Notes []Note
}

// HappyBirthday in C major, 3/4
var HappyBirthday = Melody{
	Name: "happy-birthday",
	Notes: []Note{
		{"G4", 0.75}, {"G4", 0.25}, {"A4", 1}, {"G4", 1}, {"C5", 1}, {"B4", 2},
		{"G4", 0.75}, {"G4", 0.25}, {"A4", 1}, {"G4", 1}, {"D5", 1}, {"C5", 2},
		{"G4", 0.75}, {"G4", 0.25}, {"G5", 1}, {"E5", 1}, {"C5", 1}, {"B4", 1}, {"A4", 2},
		{"F5", 0.75}, {"F5", 0.25}, {"E5", 1}, {"C5", 1}, {"D5", 1}, {"C5", 3},
	},
}

// scheduledNote is a resolved note at an offset from the melody start
type scheduledNote struct {
	offset time.Duration
	freq   float64
	length time.Duration
}

// resolve converts the melody to absolute offsets at tempo bpm; rests only advance time
func (m Melody) resolve(bpm int) ([]scheduledNote, time.Duration, error) {
	beat := parameter.BeatDuration(bpm)
	var out []scheduledNote
	var at time.Duration

	for i, n := range m.Notes {
		if n.Beats <= 0 {
			return nil, 0, fmt.Errorf("%w: note %d of %s has %.2f beats", ErrInvalidNote, i, m.Name, n.Beats)
		}
		d := time.Duration(n.Beats * float64(beat))
		if n.Pitch != "" {
			midi, err := ParseNote(n.Pitch)
			if err != nil {
				return nil, 0, fmt.Errorf("note %d of %s: %w", i, m.Name, err)
			}
			length := d - parameter.NoteGap
			if length < parameter.NoteGap {
				length = parameter.NoteGap
			}
			out = append(out, scheduledNote{offset: at, freq: NoteFreq(midi), length: length})
		}
		at += d
	}
	return out, at, nil
}

// Duration returns the total length of m at tempo bpm
func (m Melody) Duration(bpm int) time.Duration {
	beat := parameter.BeatDuration(bpm)
	var total time.Duration
	for _, n := range m.Notes {
		total += time.Duration(n.Beats * float64(beat))
	}
	return total
}
