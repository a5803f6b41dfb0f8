package model

import "errors"

var ErrUnknownKey = errors.New("unknown key signature")

type KeySignature string

const (
	KeyC  KeySignature = "C"
	KeyG  KeySignature = "G"
	KeyD  KeySignature = "D"
	KeyA  KeySignature = "A"
	KeyE  KeySignature = "E"
	KeyB  KeySignature = "B"
	KeyFs KeySignature = "F#"
	KeyF  KeySignature = "F"
	KeyBb KeySignature = "Bb"
	KeyEb KeySignature = "Eb"
	KeyAb KeySignature = "Ab"
	KeyDb KeySignature = "Db"
	KeyGb KeySignature = "Gb"
)

type Mode string

const (
	Major Mode = "major"
	Minor Mode = "minor"
)

func (m Mode) Valid() bool {
	return m == Major || m == Minor
}
