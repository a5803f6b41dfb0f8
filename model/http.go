package model

type RandomChordRequest struct {
	Selections []Selection    `json:"selections"`
	Keys       []KeySignature `json:"keys"`
	Mode       Mode           `json:"mode"`
}

type CreateSessionRequest = RandomChordRequest

type StepRequest struct {
	Direction string `json:"direction"`
}

type ChordResponse struct {
	Chord        *Chord    `json:"chord"`
	Label        string    `json:"label,omitempty"`
	Name         string    `json:"name,omitempty"`
	Displayed    Pitches   `json:"displayed"`
	Spelled      [4]string `json:"spelled"`
	OctaveOffset int       `json:"octave_offset"`
	Exhausted    bool      `json:"exhausted"`
}

type SessionResponse struct {
	ID string `json:"id"`
	ChordResponse
}

type VoicingEntry struct {
	Category Category      `json:"category"`
	Index    int           `json:"index"`
	Voicing  Voicing       `json:"voicing"`
	Roots    []ScaleDegree `json:"roots,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
