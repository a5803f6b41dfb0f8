package chord

import (
	"fmt"
	"math/rand"

	"github.com/jsphweid/harmondrill/keysig"
	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/pitch"
	"github.com/jsphweid/harmondrill/voicerange"
	"github.com/jsphweid/harmondrill/voicing"
)

// Reference roots are tried in every octave of this span.
const (
	MinSearchOctave = 1
	MaxSearchOctave = 5
)

// RootCandidate is one playable placement of a voicing in a key.
type RootCandidate struct {
	Root      model.ScaleDegree
	Reference model.Pitch
}

// Candidate is a pool entry, remembering where it came from.
type Candidate struct {
	RootCandidate
	Key      model.KeySignature
	Voicing  model.Voicing
	Category model.Category
	Index    int
}

// Intn draws uniformly from [0, n).
type Intn interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int {
	return rand.Intn(n)
}

type Generator struct {
	rand     Intn
	observer Observer
}

type Option func(*Generator)

func WithRand(r Intn) Option {
	return func(g *Generator) {
		g.rand = r
	}
}

func WithObserver(o Observer) Option {
	return func(g *Generator) {
		g.observer = o
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{rand: globalRand{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) observe(ev SearchEvent) {
	if g.observer != nil {
		g.observer(ev)
	}
}

// GetValidRoots tries all 7 roots in every search octave and keeps each
// (root, reference) pair whose four voices fit their ranges.
func GetValidRoots(v model.Voicing, key keysig.Key) ([]RootCandidate, error) {
	if len(v) != 4 {
		return nil, fmt.Errorf("%w: got %d", model.ErrInvalidVoicing, len(v))
	}

	var res []RootCandidate
	for root := 1; root <= 7; root++ {
		for octave := MinSearchOctave; octave <= MaxSearchOctave; octave++ {
			ref := pitch.RootPitch(root, key, octave)
			pitches, err := pitch.ResolveChordPitches(root, key, v, &ref)
			if err != nil {
				return nil, err
			}
			if voicerange.ValidateAll(pitches) {
				res = append(res, RootCandidate{Root: root, Reference: ref})
			}
		}
	}
	return res, nil
}

// Candidates builds the flattened pool over every selection and key.
// Catalog misses, unknown keys and roots outside a template's restriction
// are left out.
func (g *Generator) Candidates(selections []model.Selection, keys []model.KeySignature) []Candidate {
	var pool []Candidate
	for _, sel := range selections {
		category, index, ok := voicing.SelectionToCategory(sel)
		if !ok {
			g.observe(SearchEvent{Stage: StageSkipped, Selection: sel, Reason: "unknown selection"})
			continue
		}
		tmpl, ok := voicing.Lookup(category, index)
		if !ok {
			g.observe(SearchEvent{Stage: StageSkipped, Selection: sel, Category: category, Index: index, Reason: "no voicing in catalog"})
			continue
		}

		for _, sym := range keys {
			key, ok := keysig.Lookup(sym)
			if !ok {
				g.observe(SearchEvent{Stage: StageSkipped, Selection: sel, Category: category, Index: index, Key: sym, Reason: "unknown key"})
				continue
			}

			roots, err := GetValidRoots(tmpl.Voicing, key)
			if err != nil {
				g.observe(SearchEvent{Stage: StageSkipped, Selection: sel, Category: category, Index: index, Key: sym, Reason: err.Error()})
				continue
			}

			var found int
			for _, rc := range roots {
				if !tmpl.AllowsRoot(rc.Root) {
					continue
				}
				found++
				pool = append(pool, Candidate{
					RootCandidate: rc,
					Key:           sym,
					Voicing:       tmpl.Voicing,
					Category:      category,
					Index:         index,
				})
			}
			g.observe(SearchEvent{Stage: StageSearched, Selection: sel, Category: category, Index: index, Key: sym, Valid: found})
		}
	}
	return pool
}

// GenerateRandomChord draws one candidate uniformly from the whole pool, so
// configurations with more playable octaves come up proportionally more
// often. It returns nil when nothing is playable.
func (g *Generator) GenerateRandomChord(selections []model.Selection, keys []model.KeySignature, mode model.Mode) *model.Chord {
	if len(selections) == 0 || len(keys) == 0 {
		return nil
	}

	pool := g.Candidates(selections, keys)
	if len(pool) == 0 {
		g.observe(SearchEvent{Stage: StageExhausted})
		return nil
	}

	picked := pool[g.rand.Intn(len(pool))]
	g.observe(SearchEvent{
		Stage:    StagePicked,
		Category: picked.Category,
		Index:    picked.Index,
		Key:      picked.Key,
		PoolSize: len(pool),
	})

	key := keysig.MustLookup(picked.Key)
	ref := picked.Reference
	pitches, err := pitch.ResolveChordPitches(picked.Root, key, picked.Voicing, &ref)
	if err != nil {
		// candidates only hold voicings that already resolved once
		return nil
	}

	return &model.Chord{
		Root:         picked.Root,
		KeySignature: picked.Key,
		Mode:         mode,
		Voicing:      picked.Voicing,
		Pitches:      pitches,
	}
}

// IsValidCombination checks one explicit chord against the voice ranges,
// anchored at the default reference root.
func IsValidCombination(root model.ScaleDegree, key keysig.Key, v model.Voicing) bool {
	if root < 1 || root > 7 {
		return false
	}
	pitches, err := pitch.ResolveChordPitches(root, key, v, nil)
	if err != nil {
		return false
	}
	return voicerange.ValidateAll(pitches)
}

// GenerateChord builds a specific chord. A combination that does not fit
// the voice ranges gives nil without an error.
func GenerateChord(root model.ScaleDegree, sym model.KeySignature, mode model.Mode, v model.Voicing) (*model.Chord, error) {
	key, ok := keysig.Lookup(sym)
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownKey, sym)
	}
	if len(v) != 4 {
		return nil, fmt.Errorf("%w: got %d", model.ErrInvalidVoicing, len(v))
	}
	if !IsValidCombination(root, key, v) {
		return nil, nil
	}

	pitches, err := pitch.ResolveChordPitches(root, key, v, nil)
	if err != nil {
		return nil, err
	}
	return &model.Chord{
		Root:         root,
		KeySignature: sym,
		Mode:         mode,
		Voicing:      append(model.Voicing(nil), v...),
		Pitches:      pitches,
	}, nil
}
