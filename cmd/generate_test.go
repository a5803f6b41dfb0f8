package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jsphweid/harmondrill/chord"
	"github.com/jsphweid/harmondrill/midi"
	"github.com/jsphweid/harmondrill/model"
	"github.com/stretchr/testify/assert"
)

func TestDrillFlagsConfig(t *testing.T) {
	f := drillFlags{
		doublings:  []string{"SB", "AB"},
		spacings:   []string{"all"},
		inversions: []string{"root"},
		keys:       []string{"C", "Gb"},
		mode:       "minor",
	}
	cfg, err := f.config()
	assert.NoError(t, err)
	assert.Len(t, cfg.Selections, 4)
	assert.Equal(t, []model.KeySignature{model.KeyC, model.KeyGb}, cfg.Keys)
	assert.Equal(t, model.Minor, cfg.Mode)

	f.keys = []string{"H"}
	_, err = f.config()
	assert.ErrorIs(t, err, model.ErrUnknownKey)

	f.keys = []string{"C"}
	f.mode = "dorian"
	_, err = f.config()
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	f := drillFlags{doublings: []string{"SB"}, spacings: []string{"close"}, inversions: []string{"root"}, keys: []string{"C"}, mode: "major"}
	cfg, err := f.config()
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, generate(&buf, chord.NewGenerator(chord.WithRand(firstRand{})), cfg, 2))
	assert.Contains(t, buf.String(), "soprano=C4(60)")
	assert.Contains(t, buf.String(), "bass=C3(48)")

	cfg.Selections = nil
	assert.Error(t, generate(&buf, chord.NewGenerator(), cfg, 1))
}

func TestExportThenInspect(t *testing.T) {
	f := drillFlags{doublings: []string{"all"}, spacings: []string{"all"}, inversions: []string{"all"}, keys: []string{"all"}, mode: "major"}
	cfg, err := f.config()
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "drill.mid")
	assert.NoError(t, export(path, chord.NewGenerator(), cfg, 5, midi.DefaultOptions()))

	var buf bytes.Buffer
	assert.NoError(t, inspect(&buf, path))
	assert.Contains(t, buf.String(), "chord 5:")
	assert.NotContains(t, buf.String(), "!")
}
