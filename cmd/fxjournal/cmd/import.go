package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/journal"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import trades from a CSV file, replacing the journal",
	Long: `Parse a CSV export back into trade records and replace the whole
journal with them. Rows that fail validation are skipped and reported.
The replacement only happens after confirmation (or --yes).

Example:
  fxjournal import trading_journal_alice_2024-03-15.csv --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importYes bool

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "skip the confirmation prompt")
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	recs, skipped, err := journal.ImportCSV(f)
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}
	if skipped > 0 {
		fmt.Printf("Skipped %d invalid row(s)\n", skipped)
	}

	sess, store, err := openSession()
	if err != nil {
		return err
	}
	defer store.Close()

	prompt := fmt.Sprintf("Import %d trades? This will replace your current %d trade(s)",
		len(recs), len(sess.Trades()))
	if !confirm(prompt, importYes) {
		fmt.Println("Aborted; journal unchanged.")
		return nil
	}

	if err := sess.Replace(recs); err != nil {
		return err
	}

	fmt.Printf("Imported %d trades\n", len(recs))
	return nil
}
