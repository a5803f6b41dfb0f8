package cmd

import (
	"github.com/jsphweid/harmondrill/chord"
	"github.com/jsphweid/harmondrill/logger"
	"github.com/spf13/cobra"
)

// Version is set via ldflags during build.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "harmondrill",
	Short:   "Four-part chord reading drills",
	Long:    `Generates random SATB chords for sight-reading and ear-training drills.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetDebug(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search diagnostics")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// newGenerator wires the search observer to the debug log.
func newGenerator() *chord.Generator {
	return chord.NewGenerator(chord.WithObserver(logSearchEvent))
}

func logSearchEvent(ev chord.SearchEvent) {
	fields := logger.Fields{"stage": ev.Stage}
	switch ev.Stage {
	case chord.StageSkipped:
		fields["selection"] = ev.Selection
		fields["key"] = ev.Key
		fields["reason"] = ev.Reason
	case chord.StageSearched:
		fields["category"] = ev.Category
		fields["index"] = ev.Index
		fields["key"] = ev.Key
		fields["valid"] = ev.Valid
	case chord.StagePicked, chord.StageExhausted:
		fields["pool"] = ev.PoolSize
	}
	logger.Debug("chord search", fields)
}
