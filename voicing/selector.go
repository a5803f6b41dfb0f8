package voicing

import (
	"fmt"

	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/util"
	"golang.org/x/exp/slices"
)

var inversionIndexes = map[model.Inversion]int{
	model.RootPosition: RootIndex,
	model.FifthInBass:  FifthIndex,
	model.ThirdInBass:  ThirdIndex,
}

func categoryFor(d model.Doubling, s model.Spacing) model.Category {
	infix := "-doubled"
	if d == model.DoublingST {
		infix = "-doubled-bottom"
	}
	return model.Category(string(d) + infix + "-" + string(s))
}

// SelectionToCategory maps a selection onto its catalog slot. It reports
// false only for symbols outside the known sets.
func SelectionToCategory(sel model.Selection) (model.Category, int, bool) {
	if !slices.Contains(model.Doublings, sel.Doubling) || !slices.Contains(model.Spacings, sel.Spacing) {
		return "", 0, false
	}
	index, ok := inversionIndexes[sel.Inversion]
	if !ok {
		return "", 0, false
	}
	return categoryFor(sel.Doubling, sel.Spacing), index, true
}

// Expand is the Cartesian product of the three toggle sets. Any empty set
// gives an empty product.
func Expand(doublings []model.Doubling, spacings []model.Spacing, inversions []model.Inversion) []model.Selection {
	doublings = util.Dedupe(doublings)
	spacings = util.Dedupe(spacings)
	inversions = util.Dedupe(inversions)

	res := make([]model.Selection, 0, len(doublings)*len(spacings)*len(inversions))
	for _, d := range doublings {
		for _, s := range spacings {
			for _, i := range inversions {
				res = append(res, model.Selection{Doubling: d, Spacing: s, Inversion: i})
			}
		}
	}
	return res
}

func ParseDoublings(symbols []string) ([]model.Doubling, error) {
	return parseSymbols(symbols, model.Doublings, "doubling")
}

func ParseSpacings(symbols []string) ([]model.Spacing, error) {
	return parseSymbols(symbols, model.Spacings, "spacing")
}

func ParseInversions(symbols []string) ([]model.Inversion, error) {
	return parseSymbols(symbols, model.Inversions, "inversion")
}

// parseSymbols validates against known, with "all" selecting every symbol.
func parseSymbols[T ~string](symbols []string, known []T, what string) ([]T, error) {
	var res []T
	for _, s := range symbols {
		if s == "all" {
			return append([]T{}, known...), nil
		}
		sym := T(s)
		if !slices.Contains(known, sym) {
			return nil, fmt.Errorf("unknown %v %q", what, s)
		}
		res = append(res, sym)
	}
	return util.Dedupe(res), nil
}
