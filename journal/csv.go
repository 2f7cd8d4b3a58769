package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/fxjournal/metrics"
	"github.com/rustyeddy/fxjournal/pkg/id"
)

var csvHeader = []string{
	"id", "date", "pair", "type", "entry", "exit", "size",
	"pips", "pnl", "pnl_percent", "rr_ratio",
	"stop_loss_pips", "take_profit_pips", "notes", "outcome",
}

// ExportFilename follows the trading_journal_<user>_<date>.csv convention.
func ExportFilename(user string, now time.Time) string {
	return fmt.Sprintf("trading_journal_%s_%s.csv", user, now.Format("2006-01-02"))
}

// ExportCSV writes the full record sequence, one row per record.
func ExportCSV(w io.Writer, recs []TradeRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range recs {
		row := []string{
			rec.ID,
			rec.Date,
			rec.Pair,
			rec.Direction,
			f(rec.Entry),
			f(rec.Exit),
			f(rec.Size),
			f(rec.Pips),
			f(rec.PnL),
			f(rec.PnLPercent),
			rec.RRRatio,
			f(rec.StopLossPips),
			f(rec.TakeProfitPips),
			rec.Notes,
			rec.Outcome,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

// ImportCSV parses a tabular export back into trade records. Columns are
// matched by header name, so reordered or trimmed files still load. Rows
// that fail validation are skipped and counted rather than aborting the
// import; a file with no usable rows is ErrEmptyImport.
func ImportCSV(r io.Reader) (recs []TradeRecord, skipped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, 0, ErrEmptyImport
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := col["date"]; !ok {
		return nil, 0, fmt.Errorf("missing required column %q", "date")
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read row: %w", err)
		}

		rec, err := recordFromRow(col, row)
		if err != nil {
			skipped++
			continue
		}
		recs = append(recs, rec)
	}

	if len(recs) == 0 {
		return nil, skipped, ErrEmptyImport
	}
	return recs, skipped, nil
}

func recordFromRow(col map[string]int, row []string) (TradeRecord, error) {
	field := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	num := func(name string) (float64, error) {
		s := field(name)
		if s == "" {
			return 0, nil
		}
		return strconv.ParseFloat(s, 64)
	}

	rec := TradeRecord{
		ID:        field("id"),
		Date:      field("date"),
		Pair:      field("pair"),
		Direction: field("type"),
		RRRatio:   field("rr_ratio"),
		Notes:     field("notes"),
		Outcome:   field("outcome"),
	}
	if rec.Date == "" {
		return TradeRecord{}, fmt.Errorf("row has no date")
	}
	if _, err := time.Parse("2006-01-02", rec.Date); err != nil {
		return TradeRecord{}, fmt.Errorf("bad date %q: %w", rec.Date, err)
	}

	var err error
	if rec.Entry, err = num("entry"); err != nil {
		return TradeRecord{}, fmt.Errorf("bad entry: %w", err)
	}
	if rec.Exit, err = num("exit"); err != nil {
		return TradeRecord{}, fmt.Errorf("bad exit: %w", err)
	}
	if rec.Size, err = num("size"); err != nil {
		return TradeRecord{}, fmt.Errorf("bad size: %w", err)
	}
	if rec.Pips, err = num("pips"); err != nil {
		return TradeRecord{}, fmt.Errorf("bad pips: %w", err)
	}
	if rec.PnL, err = num("pnl"); err != nil {
		return TradeRecord{}, fmt.Errorf("bad pnl: %w", err)
	}
	if rec.PnLPercent, err = num("pnl_percent"); err != nil {
		return TradeRecord{}, fmt.Errorf("bad pnl_percent: %w", err)
	}
	if rec.StopLossPips, err = num("stop_loss_pips"); err != nil {
		return TradeRecord{}, fmt.Errorf("bad stop_loss_pips: %w", err)
	}
	if rec.TakeProfitPips, err = num("take_profit_pips"); err != nil {
		return TradeRecord{}, fmt.Errorf("bad take_profit_pips: %w", err)
	}

	if rec.ID == "" {
		rec.ID = id.New()
	}
	if rec.RRRatio == "" {
		rec.RRRatio = metrics.RiskReward(rec.StopLossPips, rec.TakeProfitPips)
	}
	if rec.Outcome == "" {
		rec.Outcome = metrics.OutcomeWin
		if rec.PnL < 0 {
			rec.Outcome = metrics.OutcomeLoss
		}
	}
	return rec, nil
}
