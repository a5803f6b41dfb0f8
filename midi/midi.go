package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/harmondrill/constants"
	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/util"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Voice tracks follow the tempo track, soprano first; each voice gets the
// channel matching its index.
const voiceTrackOffset = 1

type Options struct {
	Tempo    float64
	Velocity uint8
}

func DefaultOptions() Options {
	return Options{Tempo: constants.DefaultTempo, Velocity: constants.DefaultVelocity}
}

func toKey(p model.Pitch) (uint8, error) {
	if p < 0 || p > 127 {
		return 0, fmt.Errorf("pitch %v is outside the MIDI range", p)
	}
	return uint8(p), nil
}

// Build lays the chords out one per 4/4 bar.
func Build(pitches []model.Pitches, opts Options) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)
	bar := uint32(constants.TicksPerQuarter * 4)

	var tempo smf.Track
	tempo.Add(0, smf.MetaMeter(4, 4))
	tempo.Add(0, smf.MetaTempo(opts.Tempo))
	tempo.Close(bar * uint32(len(pitches)))
	if err := s.Add(tempo); err != nil {
		return nil, errors.Wrap(err, "could not add tempo track")
	}

	for i, voice := range model.Voices {
		var track smf.Track
		ch := uint8(i)
		track.Add(0, smf.MetaTrackSequenceName(voice.String()))
		for _, chord := range pitches {
			key, err := toKey(chord[i])
			if err != nil {
				return nil, err
			}
			track.Add(0, gomidi.NoteOn(ch, key, opts.Velocity))
			track.Add(bar, gomidi.NoteOff(ch, key))
		}
		track.Close(0)
		if err := s.Add(track); err != nil {
			return nil, errors.Wrapf(err, "could not add %v track", voice)
		}
	}
	return s, nil
}

func WriteChords(w io.Writer, pitches []model.Pitches, opts Options) error {
	s, err := Build(pitches, opts)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write midi")
	}
	return nil
}

func WriteChordFile(path string, pitches []model.Pitches, opts Options) error {
	if err := util.EnsureParentDir(path); err != nil {
		return errors.Wrapf(err, "could not create directory for %v", path)
	}
	var buf bytes.Buffer
	if err := WriteChords(&buf, pitches, opts); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0666), "could not write %v", path)
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// smf panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = fmt.Errorf("error parsing midi file %v: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (*smf.SMF, error) {
	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}
	return res, nil
}

// ReadChordPitches recovers chords from a file written by WriteChords: the
// n-th note-on of every voice track belongs to chord n.
func ReadChordPitches(s *smf.SMF) ([]model.Pitches, error) {
	if len(s.Tracks) < voiceTrackOffset+len(model.Voices) {
		return nil, fmt.Errorf("expected %d tracks, found %d", voiceTrackOffset+len(model.Voices), len(s.Tracks))
	}

	var perVoice [4][]model.Pitch
	for i := range model.Voices {
		for _, evt := range s.Tracks[voiceTrackOffset+i] {
			var ch, key, vel uint8
			if evt.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
				perVoice[i] = append(perVoice[i], model.Pitch(key))
			}
		}
	}

	n := len(perVoice[0])
	for _, notes := range perVoice[1:] {
		n = util.Min(n, len(notes))
	}
	res := make([]model.Pitches, n)
	for c := 0; c < n; c++ {
		for i := range model.Voices {
			res[c][i] = perVoice[i][c]
		}
	}
	return res, nil
}
