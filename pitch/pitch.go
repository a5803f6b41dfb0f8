// Package pitch turns scale degrees and voicing formulas into MIDI pitches.
// Every function here is pure.
package pitch

import (
	"fmt"

	"github.com/jsphweid/harmondrill/keysig"
	"github.com/jsphweid/harmondrill/model"
)

// Reference roots are anchored in C3..B3.
const (
	ReferenceLow  model.Pitch = 48
	ReferenceHigh model.Pitch = 60

	ReferenceOctave = 3
)

// NoteLetter is the diatonic letter of a scale degree in key.
func NoteLetter(degree int, key keysig.Key) keysig.Letter {
	return key.Tonic.Add(degree - 1)
}

func Accidental(letter keysig.Letter, key keysig.Key) int {
	return key.Accidental(letter)
}

func spell(letter keysig.Letter, octave int, key keysig.Key) model.Pitch {
	return model.Pitch((octave+1)*12 + letter.Semitone() + key.Accidental(letter))
}

// RootPitch spells the root of the given scale degree in octave.
func RootPitch(root model.ScaleDegree, key keysig.Key, octave int) model.Pitch {
	return spell(NoteLetter(root, key), octave, key)
}

// Resolve computes the pitch of one voicing degree against a concrete
// reference root. The base octave is the reference pitch's own octave, so a
// Cb reference of 59 (B3) spells its root as Cb3 = 47.
func Resolve(vd model.VoicingDegree, ref model.Pitch, key keysig.Key, root model.ScaleDegree) model.Pitch {
	rootLetter := NoteLetter(root, key)
	letter := NoteLetter(root+(vd.Degree-1), key)

	steps := vd.Degree - 1
	crossed := steps / 7
	if steps < 0 && steps%7 != 0 {
		crossed--
	}

	octave := ref.Octave() + crossed
	if crossed == 0 && letter < rootLetter {
		octave++
	}
	octave += vd.Octaves

	return spell(letter, octave, key)
}

// FindReferenceRoot places the root in [ReferenceLow, ReferenceHigh).
func FindReferenceRoot(root model.ScaleDegree, key keysig.Key) model.Pitch {
	p := RootPitch(root, key, ReferenceOctave)
	for p < ReferenceLow {
		p += 12
	}
	for p >= ReferenceHigh {
		p -= 12
	}
	return p
}

// ResolveChordPitches resolves a bass-to-soprano voicing and returns the
// pitches soprano first. A nil reference derives one with FindReferenceRoot.
func ResolveChordPitches(root model.ScaleDegree, key keysig.Key, voicing model.Voicing, reference *model.Pitch) (model.Pitches, error) {
	var res model.Pitches
	if len(voicing) != 4 {
		return res, fmt.Errorf("%w: got %d", model.ErrInvalidVoicing, len(voicing))
	}

	ref := FindReferenceRoot(root, key)
	if reference != nil {
		ref = *reference
	}

	// voicing[0] is the bass, res[3] is the bass
	for i, vd := range voicing {
		res[3-i] = Resolve(vd, ref, key, root)
	}
	return res, nil
}
