package chord

import (
	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/util"
)

// Matches reports whether the held notes answer the chord. With exact set,
// every sounding pitch must be held and nothing else; otherwise only the
// pitch classes have to agree, so any octave or voicing of the triad counts.
func Matches(target model.Pitches, held []model.Pitch, exact bool) bool {
	if len(held) == 0 {
		return false
	}
	key := func(p model.Pitch) int {
		if exact {
			return int(p)
		}
		return p.PitchClass()
	}

	want := make(map[int]bool)
	for _, p := range target {
		want[key(p)] = true
	}
	got := make(map[int]bool)
	for _, p := range held {
		got[key(p)] = true
	}

	if len(want) != len(got) {
		return false
	}
	for _, k := range util.GetKeys(want) {
		if !got[k] {
			return false
		}
	}
	return true
}
