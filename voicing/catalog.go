package voicing

import (
	"github.com/jsphweid/harmondrill/model"
)

// Inversion slots in a catalog entry.
const (
	RootIndex  = 0
	FifthIndex = 1
	ThirdIndex = 2

	NumInversions = 3
)

// Template is a catalog voicing. Roots limits which scale degrees may carry
// it; nil means any root.
type Template struct {
	Voicing model.Voicing
	Roots   []model.ScaleDegree
}

func (t Template) AllowsRoot(root model.ScaleDegree) bool {
	if t.Roots == nil {
		return true
	}
	for _, r := range t.Roots {
		if r == root {
			return true
		}
	}
	return false
}

// Voicings that double the third only read well on minor triads.
var minorTriadRoots = []model.ScaleDegree{2, 3, 6}

func v(degrees ...model.VoicingDegree) *Template {
	return &Template{Voicing: model.Voicing(degrees)}
}

func restricted(degrees ...model.VoicingDegree) *Template {
	return &Template{Voicing: model.Voicing(degrees), Roots: minorTriadRoots}
}

var (
	r  = model.V(1, 0)
	r1 = model.V(1, 1)
	r2 = model.V(1, 2)
	r3 = model.V(1, 3)
	t0 = model.V(3, 0)
	t1 = model.V(3, 1)
	t2 = model.V(3, 2)
	f0 = model.V(5, 0)
	f1 = model.V(5, 1)
	f2 = model.V(5, 2)
)

// Templates are bass, tenor, alto, soprano; slots are root, fifth, third in
// the bass.
var catalog = map[model.Category][NumInversions]*Template{
	"SB-doubled-close": {
		v(r, t0, f0, r1),
		v(f0, r1, t1, f1),
		restricted(t0, f0, r1, t1),
	},
	"SB-doubled-spread": {
		v(r, f0, t1, r2),
		v(f0, t1, r2, f2),
		restricted(t0, r1, f1, t2),
	},
	"AB-doubled-close": {
		v(r, f0, r1, t1),
		v(f0, t1, f1, r2),
		restricted(t0, r1, t1, f1),
	},
	"AB-doubled-spread": {
		v(r, t0, r1, f1),
		v(f0, r1, f1, t2),
		restricted(t0, f0, t1, r2),
	},
	"TB-doubled-close": {
		v(r, r1, t1, f1),
		v(f0, f1, r2, t2),
		restricted(t0, t1, f1, r2),
	},
	"TB-doubled-spread": {
		v(r, r1, f1, t2),
		v(f0, f1, t2, r3),
		restricted(t0, t1, r2, f2),
	},
	"ST-doubled-bottom-close": {
		v(r, r1, t1, r2),
		nil,
		nil,
	},
	"ST-doubled-bottom-spread": {
		nil,
		nil,
		nil,
	},
	"TA-doubled-close": {
		restricted(r, t1, t1, f1),
		v(f0, r1, r1, t1),
		v(t0, r1, r1, f1),
	},
	"TA-doubled-spread": {
		restricted(r, t0, t1, f1),
		v(f0, r1, r2, t2),
		v(t0, r1, r2, f2),
	},
	"AS-doubled-close": {
		restricted(r, f0, t1, t1),
		v(f0, t1, r2, r2),
		v(t0, f0, r1, r1),
	},
	"AS-doubled-spread": {
		restricted(r, f0, t1, t2),
		v(f0, t1, r2, r3),
		v(t0, f0, r1, r2),
	},
}

// Lookup never fails loudly: an unknown category or an empty slot is simply
// absent.
func Lookup(category model.Category, index int) (Template, bool) {
	if index < 0 || index >= NumInversions {
		return Template{}, false
	}
	slots, ok := catalog[category]
	if !ok || slots[index] == nil {
		return Template{}, false
	}
	tmpl := *slots[index]
	tmpl.Voicing = append(model.Voicing(nil), tmpl.Voicing...)
	return tmpl, true
}

// Categories lists catalog keys in doubling then spacing order.
func Categories() []model.Category {
	var res []model.Category
	for _, d := range model.Doublings {
		for _, s := range model.Spacings {
			res = append(res, categoryFor(d, s))
		}
	}
	return res
}
