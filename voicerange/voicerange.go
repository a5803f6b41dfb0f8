package voicerange

import "github.com/jsphweid/harmondrill/model"

// Range is an inclusive MIDI pitch range.
type Range struct {
	Low  model.Pitch
	High model.Pitch
}

func (r Range) Contains(p model.Pitch) bool {
	return p >= r.Low && p <= r.High
}

var ranges = map[model.Voice]Range{
	model.Soprano: {Low: 60, High: 81},
	model.Alto:    {Low: 55, High: 76},
	model.Tenor:   {Low: 48, High: 67},
	model.Bass:    {Low: 40, High: 62},
}

func RangeOf(v model.Voice) Range {
	return ranges[v]
}

func InRange(p model.Pitch, v model.Voice) bool {
	r, ok := ranges[v]
	return ok && r.Contains(p)
}

// ValidateAll takes pitches soprano first and passes only if every voice fits.
func ValidateAll(pitches model.Pitches) bool {
	for i, v := range model.Voices {
		if !InRange(pitches[i], v) {
			return false
		}
	}
	return true
}
