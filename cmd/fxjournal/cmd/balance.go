package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the account balance",
	Args:  cobra.NoArgs,
	RunE:  runBalance,
}

var balanceSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Overwrite the account balance",
	Args:  cobra.ExactArgs(1),
	RunE:  runBalanceSet,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	balanceCmd.AddCommand(balanceSetCmd)
}

func runBalance(cmd *cobra.Command, args []string) error {
	sess, store, err := openSession()
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Printf("%.2f\n", sess.Balance())
	return nil
}

func runBalanceSet(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("amount %q: %w", args[0], err)
	}
	if amount <= 0 {
		return fmt.Errorf("balance must be positive")
	}

	sess, store, err := openSession()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := sess.SetBalance(amount); err != nil {
		return err
	}

	fmt.Printf("Balance set to %.2f\n", sess.Balance())
	return nil
}
