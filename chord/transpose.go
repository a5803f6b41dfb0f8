package chord

import (
	"fmt"

	"github.com/jsphweid/harmondrill/keysig"
	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/pitch"
)

type Direction int

const (
	Down Direction = -1
	Up   Direction = 1
)

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up", "+":
		return Up, nil
	case "down", "-":
		return Down, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Step moves the root one diatonic step and recomputes the pitches from
// scratch against the new root's FindReferenceRoot. The caller owns offset: it counts octaves crossed
// so far and is bumped whenever the root letter wraps around the C..B cycle.
func Step(c model.Chord, dir Direction, offset int) (model.Chord, int, error) {
	if dir != Up && dir != Down {
		return c, offset, fmt.Errorf("invalid direction %d", dir)
	}
	key, ok := keysig.Lookup(c.KeySignature)
	if !ok {
		return c, offset, fmt.Errorf("%w: %q", model.ErrUnknownKey, c.KeySignature)
	}

	newRoot := model.WrapDegree(c.Root + int(dir))

	// the reference register is anchored on C, so wraps follow letters, not degrees
	oldLetter := pitch.NoteLetter(c.Root, key)
	newLetter := pitch.NoteLetter(newRoot, key)
	switch {
	case dir == Up && newLetter < oldLetter:
		offset++
	case dir == Down && newLetter > oldLetter:
		offset--
	}

	pitches, err := pitch.ResolveChordPitches(newRoot, key, c.Voicing, nil)
	if err != nil {
		return c, offset, err
	}

	next := c
	next.Root = newRoot
	next.Voicing = append(model.Voicing(nil), c.Voicing...)
	next.Pitches = pitches
	return next, offset, nil
}

// Displayed shifts every voice by offset octaves.
func Displayed(c model.Chord, offset int) model.Pitches {
	res := c.Pitches
	for i := range res {
		res[i] += model.Pitch(offset * 12)
	}
	return res
}
