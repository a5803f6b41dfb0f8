package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsphweid/harmondrill/chord"
	"github.com/jsphweid/harmondrill/keysig"
	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/util"
	"github.com/jsphweid/harmondrill/voicing"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a playability report",
	Long:  `Counts the playable (root, octave) placements of every catalog voicing in every key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := buildReport()
		if err != nil {
			return err
		}
		printReport(os.Stdout, rows)
		return nil
	},
}

type reportRow struct {
	category  model.Category
	inversion model.Inversion
	voicing   model.Voicing
	perKey    map[model.KeySignature]int
}

func (r reportRow) total() uint64 {
	counts := make([]int, 0, len(r.perKey))
	for _, k := range util.GetKeys(r.perKey) {
		counts = append(counts, r.perKey[k])
	}
	return util.Sum(counts)
}

func buildReport() ([]reportRow, error) {
	var rows []reportRow
	for _, cat := range voicing.Categories() {
		for idx, inv := range model.Inversions {
			tmpl, ok := voicing.Lookup(cat, idx)
			if !ok {
				continue
			}
			row := reportRow{category: cat, inversion: inv, voicing: tmpl.Voicing, perKey: make(map[model.KeySignature]int)}
			for _, sym := range keysig.All() {
				roots, err := chord.GetValidRoots(tmpl.Voicing, keysig.MustLookup(sym))
				if err != nil {
					return nil, err
				}
				for _, rc := range roots {
					if tmpl.AllowsRoot(rc.Root) {
						row.perKey[sym]++
					}
				}
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func printReport(w io.Writer, rows []reportRow) {
	keys := keysig.All()
	header := make([]string, len(keys))
	for i, k := range keys {
		header[i] = fmt.Sprintf("%3s", k)
	}
	fmt.Fprintf(w, "%-30s %-6s %-20s %s  total\n", "category", "inv", "voicing", strings.Join(header, " "))

	var grand []uint64
	for _, row := range rows {
		cells := make([]string, len(keys))
		for i, k := range keys {
			cells[i] = fmt.Sprintf("%3d", row.perKey[k])
		}
		fmt.Fprintf(w, "%-30s %-6s %-20v %s  %d\n", row.category, row.inversion, row.voicing, strings.Join(cells, " "), row.total())
		grand = append(grand, row.total())
	}
	fmt.Fprintf(w, "%d voicings, %d playable placements\n", len(rows), util.Sum(grand))
}
