package model

import "time"

type HistoryEntry struct {
	SessionID    string    `json:"session_id" dynamodbav:"PK"`
	Seq          int       `json:"seq" dynamodbav:"SK"`
	At           time.Time `json:"at" dynamodbav:"At"`
	Chord        Chord     `json:"chord" dynamodbav:"Chord"`
	OctaveOffset int       `json:"octave_offset" dynamodbav:"OctaveOffset"`
	Displayed    Pitches   `json:"displayed" dynamodbav:"Displayed"`
	Label        string    `json:"label" dynamodbav:"Label"`
}
