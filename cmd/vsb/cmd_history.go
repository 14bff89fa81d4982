package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"veo_builder/internal/db"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List exports saved with generate --export",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of exports to show (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	c, err := currentConfig()
	if err != nil {
		return err
	}
	recs, err := db.ListExports(c.HistoryDBPath(), historyLimit)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(recs) == 0 {
		fmt.Fprintln(w, "No exports yet. Use: vsb generate --export <script>")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tTITLE\tWORDS\tCLIPS\tWORDS/CLIP\tSIZE\tFILE")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			humanize.Time(r.CreatedAt),
			r.Title,
			humanize.Comma(int64(r.WordCount)),
			r.ClipCount,
			r.WordsPerClip,
			humanize.Bytes(uint64(r.Bytes)),
			r.FilePath,
		)
	}
	return tw.Flush()
}
