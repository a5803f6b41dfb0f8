package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/harmondrill/keysig"
	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/pitch"
)

type TriadQuality string

const (
	MajorTriad      TriadQuality = "major"
	MinorTriad      TriadQuality = "minor"
	DiminishedTriad TriadQuality = "diminished"
)

var qualities = map[model.Mode][7]TriadQuality{
	model.Major: {MajorTriad, MinorTriad, MinorTriad, MajorTriad, MajorTriad, MinorTriad, DiminishedTriad},
	model.Minor: {MinorTriad, DiminishedTriad, MajorTriad, MinorTriad, MinorTriad, MajorTriad, MajorTriad},
}

var numerals = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}

// QualityOf is the diatonic triad quality on root. Unknown modes read as major.
func QualityOf(root model.ScaleDegree, mode model.Mode) TriadQuality {
	table, ok := qualities[mode]
	if !ok {
		table = qualities[model.Major]
	}
	return table[model.WrapDegree(root)-1]
}

// InversionOf reads the inversion off the bass voice.
func InversionOf(v model.Voicing) model.Inversion {
	if len(v) == 0 {
		return model.RootPosition
	}
	switch model.WrapDegree(v[0].Degree) {
	case 3:
		return model.ThirdInBass
	case 5:
		return model.FifthInBass
	default:
		return model.RootPosition
	}
}

// RomanNumeral labels the chord with figured-bass inversion marks, e.g.
// "ii6" or "V64".
func RomanNumeral(c model.Chord) string {
	root := model.WrapDegree(c.Root)
	numeral := numerals[root-1]

	var b strings.Builder
	switch QualityOf(root, c.Mode) {
	case MajorTriad:
		b.WriteString(numeral)
	case MinorTriad:
		b.WriteString(strings.ToLower(numeral))
	case DiminishedTriad:
		b.WriteString(strings.ToLower(numeral))
		b.WriteString("°")
	}

	switch InversionOf(c.Voicing) {
	case model.ThirdInBass:
		b.WriteString("6")
	case model.FifthInBass:
		b.WriteString("64")
	}
	return b.String()
}

// Name spells the chord root in its key with a quality suffix, e.g. "F#m".
func Name(c model.Chord) string {
	key, ok := keysig.Lookup(c.KeySignature)
	if !ok {
		return ""
	}
	name := key.Spell(pitch.NoteLetter(c.Root, key))
	switch QualityOf(c.Root, c.Mode) {
	case MinorTriad:
		name += "m"
	case DiminishedTriad:
		name += "dim"
	}
	return name
}

// SpellPitches names each voice soprano first, e.g. "Eb4". Pitches are read
// from the chord as given, so a transposed display can be passed in directly.
func SpellPitches(c model.Chord, pitches model.Pitches) [4]string {
	var res [4]string
	key, ok := keysig.Lookup(c.KeySignature)
	if !ok || len(c.Voicing) != 4 {
		return res
	}
	for i := range res {
		vd := c.Voicing[3-i]
		letter := pitch.NoteLetter(c.Root+vd.Degree-1, key)
		natural := pitches[i] - model.Pitch(letter.Semitone()+key.Accidental(letter))
		res[i] = fmt.Sprintf("%v%d", key.Spell(letter), natural.Octave())
	}
	return res
}
