package keysig

import (
	"testing"

	"github.com/jsphweid/harmondrill/model"
	"github.com/stretchr/testify/assert"
)

func accidentalsOf(k Key) map[string]int {
	res := make(map[string]int)
	for l := C; l <= B; l++ {
		if acc := k.Accidental(l); acc != 0 {
			res[l.String()] = acc
		}
	}
	return res
}

func TestTraditionalKeySignatures(t *testing.T) {
	cases := map[model.KeySignature]map[string]int{
		model.KeyC:  {},
		model.KeyG:  {"F": 1},
		model.KeyD:  {"F": 1, "C": 1},
		model.KeyA:  {"F": 1, "C": 1, "G": 1},
		model.KeyE:  {"F": 1, "C": 1, "G": 1, "D": 1},
		model.KeyB:  {"F": 1, "C": 1, "G": 1, "D": 1, "A": 1},
		model.KeyFs: {"F": 1, "C": 1, "G": 1, "D": 1, "A": 1, "E": 1},
		model.KeyF:  {"B": -1},
		model.KeyBb: {"B": -1, "E": -1},
		model.KeyEb: {"B": -1, "E": -1, "A": -1},
		model.KeyAb: {"B": -1, "E": -1, "A": -1, "D": -1},
		model.KeyDb: {"B": -1, "E": -1, "A": -1, "D": -1, "G": -1},
		model.KeyGb: {"B": -1, "E": -1, "A": -1, "D": -1, "G": -1, "C": -1},
	}

	for sym, expected := range cases {
		t.Run(string(sym), func(t *testing.T) {
			k, ok := Lookup(sym)
			assert.True(t, ok)
			assert.Equal(t, expected, accidentalsOf(k))
			assert.Equal(t, string(sym), k.Spell(k.Tonic))
		})
	}
}

func TestAllListsThirteenKeys(t *testing.T) {
	all := All()
	assert.Len(t, all, 13)
	assert.Equal(t, model.KeyC, all[0])
	assert.Equal(t, model.KeyGb, all[12])
}

func TestLetterAddWrapsBothWays(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(C, B.Add(1))
	assert.Equal(B, C.Add(-1))
	assert.Equal(E, C.Add(9))
	assert.Equal(A, C.Add(-9))
}

func TestParse(t *testing.T) {
	keys, err := Parse([]string{"D", "Bb", "D"})
	assert.NoError(t, err)
	assert.Equal(t, []model.KeySignature{model.KeyD, model.KeyBb}, keys)

	keys, err = Parse([]string{"all"})
	assert.NoError(t, err)
	assert.Len(t, keys, 13)

	_, err = Parse([]string{"H"})
	assert.ErrorIs(t, err, model.ErrUnknownKey)
}
