package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/journal"
	"github.com/rustyeddy/fxjournal/market"
	"github.com/rustyeddy/fxjournal/metrics"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade in the journal",
	Long: `Record a trade. Pips, P/L, P/L% and risk/reward are derived from the
price inputs; leaving --exit at 0 records a still-open trade with zero
derived figures.

Example:
  fxjournal add --pair EUR/USD --type buy --entry 1.1000 --exit 1.1005 \
      --size 1.0 --stop 1.0990 --target 1.1020 --notes "London breakout"`,
	RunE: runAdd,
}

var (
	addDate    string
	addPair    string
	addType    string
	addEntry   float64
	addExit    float64
	addSize    float64
	addStop    float64
	addTarget  float64
	addBalance float64
	addNotes   string
)

func init() {
	rootCmd.AddCommand(addCmd)

	fl := addCmd.Flags()
	fl.StringVar(&addDate, "date", "", "trade date YYYY-MM-DD (default today)")
	fl.StringVar(&addPair, "pair", "", "instrument, e.g. EUR/USD")
	fl.StringVar(&addType, "type", "buy", "trade direction: buy or sell")
	fl.Float64Var(&addEntry, "entry", 0, "entry price")
	fl.Float64Var(&addExit, "exit", 0, "exit price (0 = still open)")
	fl.Float64Var(&addSize, "size", 0, "position size in lots (default from config)")
	fl.Float64Var(&addStop, "stop", 0, "stop-loss price")
	fl.Float64Var(&addTarget, "target", 0, "take-profit price")
	fl.Float64Var(&addBalance, "balance", 0, "account balance override for P/L%")
	fl.StringVar(&addNotes, "notes", "", "free-text notes")

	addCmd.MarkFlagRequired("pair")
	addCmd.MarkFlagRequired("entry")
}

func runAdd(cmd *cobra.Command, args []string) error {
	sess, store, err := openSession()
	if err != nil {
		return err
	}
	defer store.Close()

	in, err := tradeInput(sess)
	if err != nil {
		return err
	}

	rec, err := sess.Add(in)
	if err != nil {
		return fmt.Errorf("add trade: %w", err)
	}

	printRecord(rec)
	fmt.Printf("Balance: %.2f\n", sess.Balance())
	return nil
}

// tradeInput validates the add/edit flags into a metrics input. Unknown
// pairs are refused here at the boundary; the engine itself would fall
// back to standard-class scaling.
func tradeInput(sess *journal.Session) (metrics.Input, error) {
	pair, err := market.ParsePair(addPair)
	if err != nil {
		return metrics.Input{}, fmt.Errorf("pair %q: %w", addPair, err)
	}
	dir, err := metrics.ParseDirection(addType)
	if err != nil {
		return metrics.Input{}, err
	}

	date := addDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return metrics.Input{}, fmt.Errorf("date %q: want YYYY-MM-DD", date)
	}

	size := addSize
	if size == 0 {
		size = cfg.DefaultSize
	}
	balance := addBalance
	if balance <= 0 {
		balance = sess.Balance()
	}

	return metrics.Input{
		Date:       date,
		Pair:       pair,
		Direction:  dir,
		Entry:      addEntry,
		Exit:       addExit,
		Size:       size,
		Balance:    balance,
		StopLoss:   addStop,
		TakeProfit: addTarget,
		Notes:      addNotes,
	}, nil
}

func printRecord(rec journal.TradeRecord) {
	class := market.Classify(rec.Pair)

	fmt.Printf("%s %s %s  entry %s  exit %s  size %.2f\n",
		rec.Date, rec.Pair, upperDirection(rec.Direction),
		metrics.FormatPrice(rec.Entry, class),
		metrics.FormatPrice(rec.Exit, class),
		rec.Size,
	)
	fmt.Printf("Pips: %.1f  P/L: %+.2f (%+.2f%%)  R/R: %s  Outcome: %s\n",
		rec.Pips, rec.PnL, rec.PnLPercent, rec.RRRatio, rec.Outcome)
}

func upperDirection(dir string) string {
	if dir == "sell" {
		return "SELL"
	}
	return "BUY"
}
