package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete the trade at the given list index",
	Long: `Delete a trade. Its P/L is backed out of the account balance.

Example:
  fxjournal delete 0 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteYes bool

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("index %q: %w", args[0], err)
	}

	sess, store, err := openSession()
	if err != nil {
		return err
	}
	defer store.Close()

	trades := sess.Trades()
	if index < 0 || index >= len(trades) {
		return fmt.Errorf("trade index %d out of range", index)
	}

	prompt := fmt.Sprintf("Delete trade %d (%s)?", index, recSummaryLine(trades[index]))
	if !confirm(prompt, deleteYes) {
		fmt.Println("Aborted.")
		return nil
	}

	rec, err := sess.Delete(index)
	if err != nil {
		return err
	}

	fmt.Println("Deleted:", recSummaryLine(rec))
	fmt.Printf("Balance: %.2f\n", sess.Balance())
	return nil
}
