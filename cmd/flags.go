package cmd

import (
	"github.com/jsphweid/harmondrill/keysig"
	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/session"
	"github.com/jsphweid/harmondrill/voicing"
	"github.com/spf13/cobra"
)

// drillFlags are the selection flags shared by every command that draws chords.
type drillFlags struct {
	doublings  []string
	spacings   []string
	inversions []string
	keys       []string
	mode       string
}

func (f *drillFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.doublings, "doublings", "d", []string{"SB"}, "doublings (SB AB TB ST TA AS, or all)")
	cmd.Flags().StringSliceVarP(&f.spacings, "spacings", "s", []string{"close"}, "spacings (close spread, or all)")
	cmd.Flags().StringSliceVarP(&f.inversions, "inversions", "i", []string{"root"}, "inversions (root fifth third, or all)")
	cmd.Flags().StringSliceVarP(&f.keys, "keys", "k", []string{"C"}, "key signatures (C G D A E B F# F Bb Eb Ab Db Gb, or all)")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", string(model.Major), "major or minor")
}

func (f *drillFlags) config() (session.Config, error) {
	doublings, err := voicing.ParseDoublings(f.doublings)
	if err != nil {
		return session.Config{}, err
	}
	spacings, err := voicing.ParseSpacings(f.spacings)
	if err != nil {
		return session.Config{}, err
	}
	inversions, err := voicing.ParseInversions(f.inversions)
	if err != nil {
		return session.Config{}, err
	}
	keys, err := keysig.Parse(f.keys)
	if err != nil {
		return session.Config{}, err
	}

	cfg := session.Config{
		Selections: voicing.Expand(doublings, spacings, inversions),
		Keys:       keys,
		Mode:       model.Mode(f.mode),
	}
	if err := cfg.Validate(); err != nil {
		return session.Config{}, err
	}
	return cfg, nil
}
