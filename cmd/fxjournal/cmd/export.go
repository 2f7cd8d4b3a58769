package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal to a CSV file",
	Long: `Export every trade, one row per record. The default filename follows
the trading_journal_<user>_<date>.csv convention.

Example:
  fxjournal export --out my-trades.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default trading_journal_<user>_<date>.csv)")
}

func runExport(cmd *cobra.Command, args []string) error {
	sess, store, err := openSession()
	if err != nil {
		return err
	}
	defer store.Close()

	trades := sess.Trades()
	if len(trades) == 0 {
		return fmt.Errorf("no trades to export")
	}

	out := exportOut
	if out == "" {
		out = journal.ExportFilename(sess.User(), time.Now())
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	if err := journal.ExportCSV(f, trades); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}

	fmt.Printf("Exported %d trades to %s\n", len(trades), out)
	return nil
}
