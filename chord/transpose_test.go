package chord

import (
	"testing"

	"github.com/jsphweid/harmondrill/keysig"
	"github.com/jsphweid/harmondrill/model"
	"github.com/stretchr/testify/assert"
)

func mustChord(t *testing.T, root model.ScaleDegree, key model.KeySignature) model.Chord {
	c, err := GenerateChord(root, key, model.Major, sbCloseRoot)
	if err != nil || c == nil {
		t.Fatalf("could not build chord on %v in %v: %v", root, key, err)
	}
	return *c
}

func TestStepUpFromLeadingToneWrapsToTonic(t *testing.T) {
	c := mustChord(t, 7, model.KeyC)

	next, offset, err := Step(c, Up, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, next.Root)
	assert.Equal(t, 1, offset)
	assert.Equal(t, model.Pitch(60), Displayed(next, offset)[3])
}

func TestStepDownFromTonicWrapsToLeadingTone(t *testing.T) {
	c := mustChord(t, 1, model.KeyC)

	next, offset, err := Step(c, Down, 0)
	assert.NoError(t, err)
	assert.Equal(t, 7, next.Root)
	assert.Equal(t, -1, offset)
	assert.Equal(t, model.Pitch(47), Displayed(next, offset)[3])
}

func TestStepFollowsLetterWrapNotDegreeWrap(t *testing.T) {
	// in D the letters wrap between B (degree 6) and C# (degree 7)
	c := mustChord(t, 6, model.KeyD)

	next, offset, err := Step(c, Up, 0)
	assert.NoError(t, err)
	assert.Equal(t, 7, next.Root)
	assert.Equal(t, 1, offset)

	next, offset, err = Step(next, Up, offset)
	assert.NoError(t, err)
	assert.Equal(t, 1, next.Root)
	assert.Equal(t, 1, offset)
}

func TestStepIntoCFlatStaysContinuous(t *testing.T) {
	// Bb up to Cb in Gb crosses the B to C letter wrap
	c := mustChord(t, 3, model.KeyGb)
	assert.Equal(t, model.Pitches{70, 65, 61, 58}, c.Pitches)

	next, offset, err := Step(c, Up, 0)
	assert.NoError(t, err)
	assert.Equal(t, 4, next.Root)
	assert.Equal(t, 1, offset)
	assert.Equal(t, model.Pitches{59, 54, 51, 47}, next.Pitches)
	assert.Equal(t, model.Pitches{71, 66, 63, 59}, Displayed(next, offset))

	back, offset, err := Step(next, Down, offset)
	assert.NoError(t, err)
	assert.Equal(t, 0, offset)
	assert.Equal(t, c.Pitches, Displayed(back, offset))
}

func TestStepIsContinuousInEveryKey(t *testing.T) {
	for _, sym := range keysig.All() {
		for _, dir := range []Direction{Up, Down} {
			t.Run(string(sym)+" "+dir.String(), func(t *testing.T) {
				c := mustChord(t, 1, sym)
				offset := 0
				prev := Displayed(c, offset)[3]
				for i := 0; i < 14; i++ {
					var err error
					c, offset, err = Step(c, dir, offset)
					assert.NoError(t, err)
					bass := Displayed(c, offset)[3]
					interval := int(bass-prev) * int(dir)
					assert.Contains(t, []int{1, 2}, interval, "root %v", c.Root)
					prev = bass
				}
				assert.Equal(t, 2*int(dir), offset)
			})
		}
	}
}

func TestStepKeepsKeyVoicingAndMode(t *testing.T) {
	c := mustChord(t, 4, model.KeyAb)
	c.Mode = model.Minor

	next, _, err := Step(c, Up, 0)
	assert.NoError(t, err)
	assert.Equal(t, model.KeyAb, next.KeySignature)
	assert.Equal(t, model.Minor, next.Mode)
	assert.True(t, c.Voicing.Equal(next.Voicing))
	assert.Equal(t, 4, c.Root)
}

func TestStepRejectsBadInput(t *testing.T) {
	c := mustChord(t, 1, model.KeyC)

	_, _, err := Step(c, Direction(3), 0)
	assert.Error(t, err)

	c.KeySignature = "H"
	_, _, err = Step(c, Up, 0)
	assert.ErrorIs(t, err, model.ErrUnknownKey)
}

func TestDisplayedShiftsEveryVoice(t *testing.T) {
	c := model.Chord{Pitches: model.Pitches{60, 55, 52, 48}}
	assert.Equal(t, model.Pitches{72, 67, 64, 60}, Displayed(c, 1))
	assert.Equal(t, model.Pitches{36, 31, 28, 24}, Displayed(c, -2))
	assert.Equal(t, c.Pitches, Displayed(c, 0))
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("up")
	assert.NoError(t, err)
	assert.Equal(t, Up, d)
	d, err = ParseDirection("down")
	assert.NoError(t, err)
	assert.Equal(t, Down, d)
	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}
