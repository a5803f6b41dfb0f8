package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// VoicingDegree is a chord member relative to the root (1 = root, 3 = third,
// 5 = fifth) plus a count of trailing octave marks, e.g. "1'".
type VoicingDegree struct {
	Degree  int
	Octaves int
}

// V is shorthand used by the static voicing tables.
func V(degree int, octaves int) VoicingDegree {
	return VoicingDegree{Degree: degree, Octaves: octaves}
}

func ParseVoicingDegree(s string) (VoicingDegree, error) {
	s = strings.TrimSpace(s)
	trimmed := strings.TrimRight(s, "'")
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 {
		return VoicingDegree{}, fmt.Errorf("invalid voicing degree %q", s)
	}
	return VoicingDegree{Degree: n, Octaves: len(s) - len(trimmed)}, nil
}

func (vd VoicingDegree) String() string {
	return strconv.Itoa(vd.Degree) + strings.Repeat("'", vd.Octaves)
}

// MarshalJSON writes a bare number when there are no octave marks and the
// marked string form otherwise, e.g. [1,3,5,"1'"].
func (vd VoicingDegree) MarshalJSON() ([]byte, error) {
	if vd.Octaves == 0 {
		return json.Marshal(vd.Degree)
	}
	return json.Marshal(vd.String())
}

func (vd *VoicingDegree) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		parsed, err := ParseVoicingDegree(strconv.Itoa(n))
		if err != nil {
			return err
		}
		*vd = parsed
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("voicing degree must be a number or string: %w", err)
	}
	parsed, err := ParseVoicingDegree(s)
	if err != nil {
		return err
	}
	*vd = parsed
	return nil
}

// Voicing is ordered bass, tenor, alto, soprano.
type Voicing []VoicingDegree

func (v Voicing) String() string {
	parts := make([]string, len(v))
	for i, vd := range v {
		parts[i] = vd.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (v Voicing) Equal(other Voicing) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

type Doubling string

const (
	DoublingSB Doubling = "SB"
	DoublingAB Doubling = "AB"
	DoublingTB Doubling = "TB"
	DoublingST Doubling = "ST"
	DoublingTA Doubling = "TA"
	DoublingAS Doubling = "AS"
)

var Doublings = []Doubling{DoublingSB, DoublingAB, DoublingTB, DoublingST, DoublingTA, DoublingAS}

type Spacing string

const (
	Close  Spacing = "close"
	Spread Spacing = "spread"
)

var Spacings = []Spacing{Close, Spread}

type Inversion string

const (
	RootPosition Inversion = "root"
	FifthInBass  Inversion = "fifth"
	ThirdInBass  Inversion = "third"
)

var Inversions = []Inversion{RootPosition, FifthInBass, ThirdInBass}

type Selection struct {
	Doubling  Doubling  `json:"doubling"`
	Spacing   Spacing   `json:"spacing"`
	Inversion Inversion `json:"inversion"`
}

// Category is a voicing catalog key such as "SB-doubled-close".
type Category string
