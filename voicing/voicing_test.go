package voicing

import (
	"testing"

	"github.com/jsphweid/harmondrill/model"
	"github.com/stretchr/testify/assert"
)

func TestSelectionToCategory(t *testing.T) {
	cases := []struct {
		sel      model.Selection
		category model.Category
		index    int
	}{
		{model.Selection{Doubling: "SB", Spacing: "close", Inversion: "root"}, "SB-doubled-close", 0},
		{model.Selection{Doubling: "AB", Spacing: "spread", Inversion: "fifth"}, "AB-doubled-spread", 1},
		{model.Selection{Doubling: "ST", Spacing: "close", Inversion: "third"}, "ST-doubled-bottom-close", 2},
		{model.Selection{Doubling: "ST", Spacing: "spread", Inversion: "root"}, "ST-doubled-bottom-spread", 0},
		{model.Selection{Doubling: "AS", Spacing: "close", Inversion: "third"}, "AS-doubled-close", 2},
	}

	for _, c := range cases {
		t.Run(string(c.category), func(t *testing.T) {
			category, index, ok := SelectionToCategory(c.sel)
			assert.True(t, ok)
			assert.Equal(t, c.category, category)
			assert.Equal(t, c.index, index)
		})
	}

	_, _, ok := SelectionToCategory(model.Selection{Doubling: "XX", Spacing: "close", Inversion: "root"})
	assert.False(t, ok)
	_, _, ok = SelectionToCategory(model.Selection{Doubling: "SB", Spacing: "close", Inversion: "seventh"})
	assert.False(t, ok)
}

func TestLookupRootPositionClose(t *testing.T) {
	tmpl, ok := Lookup("SB-doubled-close", RootIndex)
	assert.True(t, ok)
	expected := model.Voicing{model.V(1, 0), model.V(3, 0), model.V(5, 0), model.V(1, 1)}
	assert.True(t, expected.Equal(tmpl.Voicing), tmpl.Voicing.String())
	assert.Nil(t, tmpl.Roots)
}

func TestLookupMissesAreAbsent(t *testing.T) {
	_, ok := Lookup("ST-doubled-bottom-close", FifthIndex)
	assert.False(t, ok)
	_, ok = Lookup("ST-doubled-bottom-spread", RootIndex)
	assert.False(t, ok)
	_, ok = Lookup("nonsense", RootIndex)
	assert.False(t, ok)
	_, ok = Lookup("SB-doubled-close", 3)
	assert.False(t, ok)
	_, ok = Lookup("SB-doubled-close", -1)
	assert.False(t, ok)
}

func TestEveryTemplateHasFourVoices(t *testing.T) {
	for _, category := range Categories() {
		for i := 0; i < NumInversions; i++ {
			tmpl, ok := Lookup(category, i)
			if !ok {
				continue
			}
			assert.Len(t, tmpl.Voicing, 4, "%v[%v]", category, i)
		}
	}
}

func TestBassDegreeMatchesInversionSlot(t *testing.T) {
	bass := map[int]int{RootIndex: 1, FifthIndex: 5, ThirdIndex: 3}
	for _, category := range Categories() {
		for i := 0; i < NumInversions; i++ {
			tmpl, ok := Lookup(category, i)
			if !ok {
				continue
			}
			assert.Equal(t, bass[i], tmpl.Voicing[0].Degree, "%v[%v]", category, i)
			assert.Equal(t, 0, tmpl.Voicing[0].Octaves, "%v[%v]", category, i)
		}
	}
}

func TestRestrictedTemplatesOnlyAllowMinorTriads(t *testing.T) {
	tmpl, ok := Lookup("TA-doubled-close", RootIndex)
	assert.True(t, ok)
	for root := 1; root <= 7; root++ {
		expected := root == 2 || root == 3 || root == 6
		assert.Equal(t, expected, tmpl.AllowsRoot(root), "root %v", root)
	}
}

func TestCategoriesCoverEveryDoublingAndSpacing(t *testing.T) {
	categories := Categories()
	assert.Len(t, categories, 12)
	for _, c := range categories {
		_, ok := catalog[c]
		assert.True(t, ok, string(c))
	}
}

func TestExpandIsCartesianProduct(t *testing.T) {
	sels := Expand(
		[]model.Doubling{"SB", "TA"},
		[]model.Spacing{"close", "spread"},
		[]model.Inversion{"root", "fifth", "third"},
	)
	assert.Len(t, sels, 12)
	assert.Equal(t, model.Selection{Doubling: "SB", Spacing: "close", Inversion: "root"}, sels[0])
	assert.Equal(t, model.Selection{Doubling: "TA", Spacing: "spread", Inversion: "third"}, sels[11])

	assert.Len(t, Expand([]model.Doubling{"SB", "SB"}, []model.Spacing{"close"}, []model.Inversion{"root"}), 1)
}

func TestExpandWithAnyEmptySetIsEmpty(t *testing.T) {
	assert.Empty(t, Expand(nil, model.Spacings, model.Inversions))
	assert.Empty(t, Expand(model.Doublings, nil, model.Inversions))
	assert.Empty(t, Expand(model.Doublings, model.Spacings, []model.Inversion{}))
}

func TestParseSymbols(t *testing.T) {
	ds, err := ParseDoublings([]string{"all"})
	assert.NoError(t, err)
	assert.Equal(t, model.Doublings, ds)

	ss, err := ParseSpacings([]string{"spread", "close", "spread"})
	assert.NoError(t, err)
	assert.Equal(t, []model.Spacing{"spread", "close"}, ss)

	_, err = ParseInversions([]string{"root", "second"})
	assert.Error(t, err)
}
