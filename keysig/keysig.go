package keysig

import (
	"fmt"

	"github.com/jsphweid/harmondrill/model"
)

// Letter indexes the natural note names C..B.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

const NumLetters = 7

var letterNames = [NumLetters]string{"C", "D", "E", "F", "G", "A", "B"}

var naturalSemitones = [NumLetters]int{0, 2, 4, 5, 7, 9, 11}

func (l Letter) String() string {
	return letterNames[l.wrap()]
}

func (l Letter) Semitone() int {
	return naturalSemitones[l.wrap()]
}

// Add steps through the letter cycle, wrapping in both directions.
func (l Letter) Add(steps int) Letter {
	return Letter(int(l) + steps).wrap()
}

func (l Letter) wrap() Letter {
	return Letter(((int(l) % NumLetters) + NumLetters) % NumLetters)
}

type Key struct {
	Symbol      model.KeySignature
	Tonic       Letter
	accidentals map[Letter]int
}

// Accidental is +1 for a sharped letter, -1 for a flatted one, else 0.
func (k Key) Accidental(l Letter) int {
	return k.accidentals[l]
}

// Spell returns the letter as it appears in this key, e.g. "F#" in D.
func (k Key) Spell(l Letter) string {
	switch k.Accidental(l) {
	case 1:
		return l.String() + "#"
	case -1:
		return l.String() + "b"
	default:
		return l.String()
	}
}

func sharps(letters ...Letter) map[Letter]int {
	return marks(1, letters)
}

func flats(letters ...Letter) map[Letter]int {
	return marks(-1, letters)
}

func marks(acc int, letters []Letter) map[Letter]int {
	res := make(map[Letter]int, len(letters))
	for _, l := range letters {
		res[l] = acc
	}
	return res
}

var order = []model.KeySignature{
	model.KeyC, model.KeyG, model.KeyD, model.KeyA, model.KeyE, model.KeyB, model.KeyFs,
	model.KeyF, model.KeyBb, model.KeyEb, model.KeyAb, model.KeyDb, model.KeyGb,
}

var table = map[model.KeySignature]Key{
	model.KeyC:  {Symbol: model.KeyC, Tonic: C, accidentals: map[Letter]int{}},
	model.KeyG:  {Symbol: model.KeyG, Tonic: G, accidentals: sharps(F)},
	model.KeyD:  {Symbol: model.KeyD, Tonic: D, accidentals: sharps(F, C)},
	model.KeyA:  {Symbol: model.KeyA, Tonic: A, accidentals: sharps(F, C, G)},
	model.KeyE:  {Symbol: model.KeyE, Tonic: E, accidentals: sharps(F, C, G, D)},
	model.KeyB:  {Symbol: model.KeyB, Tonic: B, accidentals: sharps(F, C, G, D, A)},
	model.KeyFs: {Symbol: model.KeyFs, Tonic: F, accidentals: sharps(F, C, G, D, A, E)},
	model.KeyF:  {Symbol: model.KeyF, Tonic: F, accidentals: flats(B)},
	model.KeyBb: {Symbol: model.KeyBb, Tonic: B, accidentals: flats(B, E)},
	model.KeyEb: {Symbol: model.KeyEb, Tonic: E, accidentals: flats(B, E, A)},
	model.KeyAb: {Symbol: model.KeyAb, Tonic: A, accidentals: flats(B, E, A, D)},
	model.KeyDb: {Symbol: model.KeyDb, Tonic: D, accidentals: flats(B, E, A, D, G)},
	model.KeyGb: {Symbol: model.KeyGb, Tonic: G, accidentals: flats(B, E, A, D, G, C)},
}

func Lookup(sym model.KeySignature) (Key, bool) {
	k, ok := table[sym]
	return k, ok
}

// MustLookup is for compiled-in key symbols only.
func MustLookup(sym model.KeySignature) Key {
	k, ok := table[sym]
	if !ok {
		panic("unknown key signature: " + string(sym))
	}
	return k
}

// All returns the 13 keys, sharps first then flats.
func All() []model.KeySignature {
	res := make([]model.KeySignature, len(order))
	copy(res, order)
	return res
}

// Parse accepts the table symbols; "all" expands to every key.
func Parse(symbols []string) ([]model.KeySignature, error) {
	var res []model.KeySignature
	seen := make(map[model.KeySignature]bool)
	for _, s := range symbols {
		if s == "all" {
			return All(), nil
		}
		sym := model.KeySignature(s)
		if _, ok := table[sym]; !ok {
			return nil, fmt.Errorf("%w: %q", model.ErrUnknownKey, s)
		}
		if !seen[sym] {
			seen[sym] = true
			res = append(res, sym)
		}
	}
	return res, nil
}
