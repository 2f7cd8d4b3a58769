package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journal statistics and the monthly P/L chart",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

const chartWidth = 40

func runStats(cmd *cobra.Command, args []string) error {
	sess, store, err := openSession()
	if err != nil {
		return err
	}
	defer store.Close()

	s := stats.Summarize(sess.Trades())

	fmt.Printf("User:           %s\n", sess.User())
	fmt.Printf("Balance:        %.2f\n", sess.Balance())
	fmt.Printf("Trades:         %d (%d wins, %d losses)\n", s.Trades, s.Wins, s.Losses)
	fmt.Printf("Win rate:       %.1f%%\n", s.WinRate)
	fmt.Printf("Total P/L:      %+.2f\n", s.TotalPnL)
	fmt.Printf("Profit factor:  %.2f\n", s.ProfitFactor)

	if s.Trades > 0 {
		fmt.Printf("Gross profit:   %.2f\n", s.GrossProfit)
		fmt.Printf("Gross loss:     %.2f\n", s.GrossLoss)
		fmt.Printf("Avg win:        %.2f\n", s.AvgWin)
		fmt.Printf("Avg loss:       %.2f\n", s.AvgLoss)
		fmt.Printf("Expectancy:     %+.2f per trade\n", s.Expectancy)
		fmt.Printf("P/L std dev:    %.2f\n", s.PnLStdDev)
	}

	buckets := stats.MonthlyBuckets(sess.Trades())
	if len(buckets) == 0 {
		return nil
	}

	fmt.Println("\nMonthly P/L")
	printMonthlyChart(buckets)
	return nil
}

// printMonthlyChart renders one bar per month, scaled to the largest
// absolute monthly P/L.
func printMonthlyChart(buckets []stats.MonthlyBucket) {
	var max float64
	for _, b := range buckets {
		if abs := math.Abs(b.PnL); abs > max {
			max = abs
		}
	}
	if max == 0 {
		max = 1
	}

	for _, b := range buckets {
		n := int(math.Round(math.Abs(b.PnL) / max * chartWidth))
		bar := strings.Repeat("#", n)
		fmt.Printf("%s  %10.2f  %s\n", b.Month, b.PnL, bar)
	}
}
