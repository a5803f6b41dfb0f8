package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/harmondrill/chord"
	"github.com/jsphweid/harmondrill/logger"
	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/session"
	"github.com/jsphweid/harmondrill/util"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	playFlags   drillFlags
	playInPort  int
	playOutPort int
	playExact   bool
	playSettle  time.Duration
)

func init() {
	playFlags.register(playCmd)
	playCmd.Flags().IntVar(&playInPort, "in", 0, "MIDI input port")
	playCmd.Flags().IntVar(&playOutPort, "out", -1, "MIDI output port for sounding each chord, -1 for none")
	playCmd.Flags().BoolVar(&playExact, "exact", false, "require the exact voicing instead of the pitch classes")
	playCmd.Flags().DurationVar(&playSettle, "settle", 150*time.Millisecond, "wait for held notes to settle before checking")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Runs a live drill on a MIDI keyboard",
	Long:  `Shows a random chord and moves on once it is played on the MIDI input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := playFlags.config()
		if err != nil {
			return err
		}
		return play(cfg)
	},
}

// drill tracks held notes against the chord on screen. send is nil when no
// output port is open.
type drill struct {
	mu      sync.Mutex
	g       *chord.Generator
	cfg     session.Config
	exact   bool
	out     io.Writer
	send    func(gomidi.Message) error
	held    map[uint8]bool
	current *model.Chord
	solved  int
}

func newDrill(g *chord.Generator, cfg session.Config, exact bool, out io.Writer) *drill {
	return &drill{g: g, cfg: cfg, exact: exact, out: out, held: make(map[uint8]bool)}
}

// next draws the following chord. It must be called with d.mu held.
func (d *drill) next() error {
	d.sound(false)
	d.current = d.g.GenerateRandomChord(d.cfg.Selections, d.cfg.Keys, d.cfg.Mode)
	if d.current == nil {
		return fmt.Errorf("no playable chord for the selected voicings and keys")
	}
	printChord(d.out, *d.current, d.current.Pitches)
	d.sound(true)
	return nil
}

func (d *drill) sound(on bool) {
	if d.send == nil || d.current == nil {
		return
	}
	for i, p := range d.current.Pitches {
		msg := gomidi.NoteOff(uint8(i), uint8(p))
		if on {
			msg = gomidi.NoteOn(uint8(i), uint8(p), 80)
		}
		if err := d.send(msg); err != nil {
			logger.Warn("could not send note", logger.Fields{"error": err})
		}
	}
}

func (d *drill) noteOn(key uint8) {
	d.mu.Lock()
	d.held[key] = true
	d.mu.Unlock()
}

func (d *drill) noteOff(key uint8) {
	d.mu.Lock()
	delete(d.held, key)
	d.mu.Unlock()
}

// check advances when the held notes answer the current chord.
func (d *drill) check() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return false, nil
	}

	var held []model.Pitch
	for _, k := range util.GetKeys(d.held) {
		held = append(held, model.Pitch(k))
	}
	if !chord.Matches(d.current.Pitches, held, d.exact) {
		return false, nil
	}

	d.solved++
	logger.Info("chord solved", logger.Fields{"label": chord.RomanNumeral(*d.current), "solved": d.solved})
	return true, d.next()
}

func play(cfg session.Config) error {
	defer gomidi.CloseDriver()

	in, err := gomidi.InPort(playInPort)
	if err != nil {
		return fmt.Errorf("can't find MIDI input %d: %w", playInPort, err)
	}

	d := newDrill(newGenerator(), cfg, playExact, os.Stdout)
	if playOutPort >= 0 {
		out, err := gomidi.OutPort(playOutPort)
		if err != nil {
			return fmt.Errorf("can't find MIDI output %d: %w", playOutPort, err)
		}
		send, err := gomidi.SendTo(out)
		if err != nil {
			return err
		}
		d.send = send
	}

	d.mu.Lock()
	err = d.next()
	d.mu.Unlock()
	if err != nil {
		return err
	}

	debounced := debounce.New(playSettle)
	checkHeld := func() {
		if _, err := d.check(); err != nil {
			logger.Error("drill stopped", err, nil)
		}
	}
	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			d.noteOn(key)
			debounced(checkHeld)
		case msg.GetNoteEnd(&ch, &key):
			d.noteOff(key)
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig

	d.mu.Lock()
	d.sound(false)
	logger.Info("drill finished", logger.Fields{"solved": d.solved})
	d.mu.Unlock()
	return nil
}
