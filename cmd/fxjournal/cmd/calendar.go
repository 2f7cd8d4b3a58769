package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/stats"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the P/L calendar for a month",
	Long: `Render the per-day P/L calendar. Days with trades show the day's
total P/L; the monthly footer sums trades, P/L and P/L%.

Examples:
  fxjournal calendar
  fxjournal calendar --month 2024-02`,
	Args: cobra.NoArgs,
	RunE: runCalendar,
}

var calendarMonth string

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().StringVarP(&calendarMonth, "month", "m", "", "month to show, YYYY-MM (default current)")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	year, month, err := monthArg(calendarMonth)
	if err != nil {
		return err
	}

	sess, store, err := openSession()
	if err != nil {
		return err
	}
	defer store.Close()

	days := stats.Month(sess.Trades(), year, month)
	firstWeekday, numDays := stats.MonthLayout(year, month)

	fmt.Printf("%s %d\n", month, year)
	fmt.Println("      Sun       Mon       Tue       Wed       Thu       Fri       Sat")

	// Leading blanks up to the month's first weekday.
	cells := make([]string, 0, 42)
	for i := 0; i < int(firstWeekday); i++ {
		cells = append(cells, "")
	}
	for day := 1; day <= numDays; day++ {
		if sum, ok := days[day]; ok {
			cells = append(cells, fmt.Sprintf("%2d %+6.0f", day, sum.PnL))
		} else {
			cells = append(cells, fmt.Sprintf("%2d", day))
		}
	}

	for i := 0; i < len(cells); i += 7 {
		end := i + 7
		if end > len(cells) {
			end = len(cells)
		}
		for _, c := range cells[i:end] {
			fmt.Printf("%9s ", c)
		}
		fmt.Println()
	}

	var trades int
	var pnl, pct float64
	for _, sum := range days {
		trades += sum.Trades
		pnl += sum.PnL
		pct += sum.PnLPercent
	}
	fmt.Printf("\n%d trade(s)  P/L %+.2f  P/L%% %+.2f%%\n", trades, pnl, pct)
	return nil
}

func monthArg(s string) (int, time.Month, error) {
	if s == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("month %q: want YYYY-MM", s)
	}
	return t.Year(), t.Month(), nil
}
