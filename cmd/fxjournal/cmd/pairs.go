package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/market"
)

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "List the supported instruments",
	Args:  cobra.NoArgs,
	RunE:  runPairs,
}

func init() {
	rootCmd.AddCommand(pairsCmd)
}

func runPairs(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PAIR\tCLASS\tPIP SIZE\t$/PIP/LOT")

	for _, p := range market.Pairs() {
		class := market.Classify(p)
		fmt.Fprintf(w, "%s\t%s\t%g\t%.0f\n",
			p, class, class.PipSize(), market.DollarPerPip(p))
	}
	return w.Flush()
}
