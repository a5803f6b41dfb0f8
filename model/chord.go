package model

import "errors"

var ErrInvalidVoicing = errors.New("voicing must have exactly 4 voices")

// Pitch is a MIDI note number, C4 = 60.
type Pitch int

func (p Pitch) Octave() int {
	return floorDiv(int(p), 12) - 1
}

func (p Pitch) PitchClass() int {
	return ((int(p) % 12) + 12) % 12
}

// ScaleDegree is a 1-based diatonic position. Arithmetic wraps modulo 7.
type ScaleDegree = int

// WrapDegree folds any integer degree into 1..7 (8 => 1, 0 => 7).
func WrapDegree(d int) ScaleDegree {
	return ((d-1)%7+7)%7 + 1
}

type Voice int

const (
	Soprano Voice = iota
	Alto
	Tenor
	Bass
)

var Voices = []Voice{Soprano, Alto, Tenor, Bass}

func (v Voice) String() string {
	switch v {
	case Soprano:
		return "soprano"
	case Alto:
		return "alto"
	case Tenor:
		return "tenor"
	case Bass:
		return "bass"
	default:
		return "unknown"
	}
}

// Pitches are always ordered soprano, alto, tenor, bass.
type Pitches = [4]Pitch

type Chord struct {
	Root         ScaleDegree  `json:"root"`
	KeySignature KeySignature `json:"keySignature"`
	Mode         Mode         `json:"mode"`
	Voicing      Voicing      `json:"voicing"`
	Pitches      Pitches      `json:"pitches"`
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
