package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVoicingDegree(t *testing.T) {
	vd, err := ParseVoicingDegree("1'")
	assert.NoError(t, err)
	assert.Equal(t, V(1, 1), vd)

	vd, err = ParseVoicingDegree(" 5 ")
	assert.NoError(t, err)
	assert.Equal(t, V(5, 0), vd)

	vd, err = ParseVoicingDegree("3'''")
	assert.NoError(t, err)
	assert.Equal(t, 3, vd.Octaves)

	for _, bad := range []string{"", "'", "0", "x'", "-1"} {
		_, err := ParseVoicingDegree(bad)
		assert.Error(t, err, bad)
	}
}

func TestVoicingJSON(t *testing.T) {
	v := Voicing{V(1, 0), V(3, 0), V(5, 0), V(1, 1)}
	data, err := json.Marshal(v)
	assert.NoError(t, err)
	assert.Equal(t, `[1,3,5,"1'"]`, string(data))

	var back Voicing
	assert.NoError(t, json.Unmarshal([]byte(`[1,"3",5,"1'"]`), &back))
	assert.True(t, v.Equal(back))
	assert.Equal(t, "[1 3 5 1']", back.String())

	assert.Error(t, json.Unmarshal([]byte(`[true]`), &back))
}
