package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsphweid/harmondrill/chord"
	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/session"
	"github.com/spf13/cobra"
)

var (
	generateFlags drillFlags
	generateCount int
)

func init() {
	generateFlags.register(generateCmd)
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "number of chords")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Prints random chords",
	Long:  `Prints random chords drawn from the selected voicings and keys.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := generateFlags.config()
		if err != nil {
			return err
		}
		return generate(os.Stdout, newGenerator(), cfg, generateCount)
	},
}

func generate(w io.Writer, g *chord.Generator, cfg session.Config, count int) error {
	for i := 0; i < count; i++ {
		c := g.GenerateRandomChord(cfg.Selections, cfg.Keys, cfg.Mode)
		if c == nil {
			return fmt.Errorf("no playable chord for the selected voicings and keys")
		}
		printChord(w, *c, c.Pitches)
	}
	return nil
}

func printChord(w io.Writer, c model.Chord, displayed model.Pitches) {
	names := chord.SpellPitches(c, displayed)
	fmt.Fprintf(w, "%s %s in %s %s  voicing %v\n", chord.RomanNumeral(c), chord.Name(c), c.KeySignature, c.Mode, c.Voicing)
	var parts []string
	for i, v := range model.Voices {
		parts = append(parts, fmt.Sprintf("%v=%s(%d)", v, names[i], displayed[i]))
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(parts, " "))
}
