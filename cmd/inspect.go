package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/harmondrill/midi"
	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/voicerange"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects an exported MIDI file",
	Long:  `Prints the chords of an exported MIDI file voice by voice and flags pitches outside their range.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(os.Stdout, args[0])
	},
}

func inspect(w io.Writer, path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	chords, err := midi.ReadChordPitches(s)
	if err != nil {
		return err
	}

	for n, pitches := range chords {
		fmt.Fprintf(w, "chord %d:", n+1)
		for i, v := range model.Voices {
			mark := ""
			if !voicerange.InRange(pitches[i], v) {
				mark = "!"
			}
			fmt.Fprintf(w, " %v=%d%s", v, pitches[i], mark)
		}
		fmt.Fprintln(w)
	}
	return nil
}
