package cmd

import (
	"fmt"

	"github.com/jsphweid/harmondrill/chord"
	"github.com/jsphweid/harmondrill/logger"
	"github.com/jsphweid/harmondrill/midi"
	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/session"
	"github.com/spf13/cobra"
)

var (
	exportFlags    drillFlags
	exportCount    int
	exportTempo    float64
	exportVelocity uint8
)

func init() {
	exportFlags.register(exportCmd)
	exportCmd.Flags().IntVarP(&exportCount, "count", "n", 8, "number of chords")
	exportCmd.Flags().Float64Var(&exportTempo, "tempo", midi.DefaultOptions().Tempo, "beats per minute")
	exportCmd.Flags().Uint8Var(&exportVelocity, "velocity", midi.DefaultOptions().Velocity, "note velocity")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <out.mid>",
	Short: "Writes random chords to a MIDI file",
	Long:  `Writes random chords to a MIDI file, one whole-note chord per bar with a track per voice.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := exportFlags.config()
		if err != nil {
			return err
		}
		opts := midi.Options{Tempo: exportTempo, Velocity: exportVelocity}
		return export(args[0], newGenerator(), cfg, exportCount, opts)
	},
}

func export(path string, g *chord.Generator, cfg session.Config, count int, opts midi.Options) error {
	var chords []model.Pitches
	for i := 0; i < count; i++ {
		c := g.GenerateRandomChord(cfg.Selections, cfg.Keys, cfg.Mode)
		if c == nil {
			return fmt.Errorf("no playable chord for the selected voicings and keys")
		}
		chords = append(chords, c.Pitches)
	}

	if err := midi.WriteChordFile(path, chords, opts); err != nil {
		return err
	}
	logger.Info("exported chords", logger.Fields{"path": path, "count": len(chords)})
	return nil
}
