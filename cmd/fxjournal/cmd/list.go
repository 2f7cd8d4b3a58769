package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/journal"
	"github.com/rustyeddy/fxjournal/market"
	"github.com/rustyeddy/fxjournal/metrics"
	"github.com/rustyeddy/fxjournal/stats"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal trades",
	Long: `List trades, most recent first. --search filters rows by a
case-insensitive substring match over every rendered field.

Examples:
  fxjournal list
  fxjournal list --search jpy
  fxjournal list --search "+500"`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listSearch string

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "filter rows by substring")
}

func runList(cmd *cobra.Command, args []string) error {
	sess, store, err := openSession()
	if err != nil {
		return err
	}
	defer store.Close()

	trades := sess.Trades()
	if len(trades) == 0 {
		fmt.Println("No trades recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tDATE\tPAIR\tTYPE\tENTRY\tEXIT\tPIPS\tP/L\tP/L%\tR/R\tNOTES")

	shown := 0
	for i, rec := range trades {
		if !stats.MatchesSearch(rec, listSearch) {
			continue
		}
		shown++

		class := market.Classify(rec.Pair)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%.1f\t%+.2f\t%+.2f%%\t%s\t%s\n",
			i,
			rec.Date,
			rec.Pair,
			upperDirection(rec.Direction),
			metrics.FormatPrice(rec.Entry, class),
			metrics.FormatPrice(rec.Exit, class),
			rec.Pips,
			rec.PnL,
			rec.PnLPercent,
			rec.RRRatio,
			truncate(rec.Notes, 30),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if listSearch != "" {
		fmt.Printf("%d of %d trades match %q\n", shown, len(trades), listSearch)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// recSummaryLine is shared by delete/edit confirmations.
func recSummaryLine(rec journal.TradeRecord) string {
	return fmt.Sprintf("%s %s %s pips=%.1f pnl=%+.2f",
		rec.Date, rec.Pair, upperDirection(rec.Direction), rec.Pips, rec.PnL)
}
