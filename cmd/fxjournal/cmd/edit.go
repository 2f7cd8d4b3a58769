package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/market"
	"github.com/rustyeddy/fxjournal/metrics"
)

var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit the trade at the given list index",
	Long: `Edit a trade. Only the flags you pass change; everything else keeps
its current value. The record is rebuilt from scratch, so all derived
figures (pips, P/L, risk/reward, outcome) are recomputed, and the trade
keeps its position in the journal.

Example:
  fxjournal edit 2 --exit 1.1012 --notes "closed early"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	fl := editCmd.Flags()
	fl.StringVar(&addDate, "date", "", "trade date YYYY-MM-DD")
	fl.StringVar(&addPair, "pair", "", "instrument, e.g. EUR/USD")
	fl.StringVar(&addType, "type", "", "trade direction: buy or sell")
	fl.Float64Var(&addEntry, "entry", 0, "entry price")
	fl.Float64Var(&addExit, "exit", 0, "exit price (0 = still open)")
	fl.Float64Var(&addSize, "size", 0, "position size in lots")
	fl.Float64Var(&addStop, "stop", 0, "stop-loss price")
	fl.Float64Var(&addTarget, "target", 0, "take-profit price")
	fl.StringVar(&addNotes, "notes", "", "free-text notes")
}

func runEdit(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("index %q: %w", args[0], err)
	}

	sess, store, err := openSession()
	if err != nil {
		return err
	}
	defer store.Close()

	draft, err := sess.BeginEdit(index)
	if err != nil {
		return err
	}

	// Apply only the flags that were actually passed, then rebuild. A bad
	// override cancels the edit so the journal is restored untouched.
	if err := applyEditFlags(cmd, &draft); err != nil {
		if cerr := sess.CancelEdit(); cerr != nil {
			return fmt.Errorf("%w (and restore failed: %v)", err, cerr)
		}
		return err
	}

	rec, err := sess.SaveEdit(draft)
	if err != nil {
		return fmt.Errorf("save edit: %w", err)
	}

	fmt.Println("Updated:", recSummaryLine(rec))
	printRecord(rec)
	return nil
}

func applyEditFlags(cmd *cobra.Command, draft *metrics.Input) error {
	fl := cmd.Flags()

	if fl.Changed("pair") {
		pair, err := market.ParsePair(addPair)
		if err != nil {
			return fmt.Errorf("pair %q: %w", addPair, err)
		}
		draft.Pair = pair
	}
	if fl.Changed("type") {
		dir, err := metrics.ParseDirection(addType)
		if err != nil {
			return err
		}
		draft.Direction = dir
	}
	if fl.Changed("date") {
		if _, err := time.Parse("2006-01-02", addDate); err != nil {
			return fmt.Errorf("date %q: want YYYY-MM-DD", addDate)
		}
		draft.Date = addDate
	}
	if fl.Changed("entry") {
		draft.Entry = addEntry
	}
	if fl.Changed("exit") {
		draft.Exit = addExit
	}
	if fl.Changed("size") {
		draft.Size = addSize
	}
	if fl.Changed("stop") {
		draft.StopLoss = addStop
	}
	if fl.Changed("target") {
		draft.TakeProfit = addTarget
	}
	if fl.Changed("notes") {
		draft.Notes = addNotes
	}
	return nil
}
