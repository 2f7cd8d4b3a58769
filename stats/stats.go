// Package stats is the aggregation engine: it rolls a trade sequence into
// summary statistics, monthly P/L buckets and per-day calendar summaries.
// It depends only on the stored record shape, never on the calculator, and
// recomputes everything from scratch on each call.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/rustyeddy/fxjournal/journal"
	"github.com/rustyeddy/fxjournal/market"
	"github.com/rustyeddy/fxjournal/metrics"
)

// WinRate is the percentage of records with a winning outcome. 0 on empty
// input, never NaN.
func WinRate(recs []journal.TradeRecord) float64 {
	if len(recs) == 0 {
		return 0
	}
	wins := 0
	for _, r := range recs {
		if r.Outcome == metrics.OutcomeWin {
			wins++
		}
	}
	return float64(wins) / float64(len(recs)) * 100
}

// TotalPnL sums realized P/L across the journal.
func TotalPnL(recs []journal.TradeRecord) float64 {
	var total float64
	for _, r := range recs {
		total += r.PnL
	}
	return total
}

// ProfitFactor is gross profit over gross loss. Defined as 0 when there
// are no losing trades (including the empty journal) to avoid a division
// by zero.
func ProfitFactor(recs []journal.TradeRecord) float64 {
	profit, loss := grossProfitLoss(recs)
	if loss == 0 {
		return 0
	}
	return profit / loss
}

func grossProfitLoss(recs []journal.TradeRecord) (profit, loss float64) {
	for _, r := range recs {
		if r.PnL > 0 {
			profit += r.PnL
		} else if r.PnL < 0 {
			loss += -r.PnL
		}
	}
	return profit, loss
}

// MonthlyBucket is one bar of the monthly P/L chart.
type MonthlyBucket struct {
	Month string // YYYY-MM
	PnL   float64
}

// MonthlyBuckets groups records by calendar month and returns the buckets
// in ascending month order. Every record lands in exactly one bucket, so
// the bucket sums partition TotalPnL.
func MonthlyBuckets(recs []journal.TradeRecord) []MonthlyBucket {
	byMonth := map[string]float64{}
	for _, r := range recs {
		if len(r.Date) < 7 {
			continue
		}
		byMonth[r.Date[:7]] += r.PnL
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]MonthlyBucket, 0, len(months))
	for _, m := range months {
		out = append(out, MonthlyBucket{Month: m, PnL: byMonth[m]})
	}
	return out
}

// DaySummary aggregates the trades of one calendar day. PnLPercent is the
// raw sum of each record's stored percentage, not re-normalized against a
// combined balance; that matches the stored-snapshot semantics.
type DaySummary struct {
	Trades     int
	PnL        float64
	PnLPercent float64
}

// Day summarizes the records dated exactly date (YYYY-MM-DD). The second
// return is false when no trade falls on that day.
func Day(recs []journal.TradeRecord, date string) (DaySummary, bool) {
	var sum DaySummary
	for _, r := range recs {
		if r.Date != date {
			continue
		}
		sum.Trades++
		sum.PnL += r.PnL
		sum.PnLPercent += r.PnLPercent
	}
	return sum, sum.Trades > 0
}

// Month returns the day-of-month summaries for one calendar month,
// indexed 1..daysIn(month). Days without trades are absent from the map.
func Month(recs []journal.TradeRecord, year int, month time.Month) map[int]DaySummary {
	out := map[int]DaySummary{}
	_, days := MonthLayout(year, month)
	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		if sum, ok := Day(recs, date); ok {
			out[day] = sum
		}
	}
	return out
}

// MonthLayout returns the weekday of the month's first day and the number
// of days in the month, for laying out a calendar grid.
func MonthLayout(year int, month time.Month) (time.Weekday, int) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	return first.Weekday(), days
}

// RowText is the rendered text of one journal row, the haystack for
// search. Field formatting mirrors the list table: class display precision
// for prices, one decimal for pips, two for money.
func RowText(rec journal.TradeRecord) string {
	class := market.Classify(rec.Pair)
	return strings.Join([]string{
		rec.Date,
		rec.Pair,
		strings.ToUpper(rec.Direction),
		metrics.FormatPrice(rec.Entry, class),
		metrics.FormatPrice(rec.Exit, class),
		fmt.Sprintf("%.1f", rec.Pips),
		fmt.Sprintf("%+.2f", rec.PnL),
		fmt.Sprintf("%+.2f%%", rec.PnLPercent),
		rec.RRRatio,
		rec.Notes,
	}, " ")
}

// MatchesSearch reports whether a record's rendered row contains query,
// case-insensitively. An empty query matches everything.
func MatchesSearch(rec journal.TradeRecord, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(
		strings.ToLower(RowText(rec)),
		strings.ToLower(query),
	)
}

// Summary is the stats screen in one struct.
type Summary struct {
	Trades       int
	Wins         int
	Losses       int
	WinRate      float64
	TotalPnL     float64
	ProfitFactor float64

	GrossProfit float64
	GrossLoss   float64
	AvgWin      float64
	AvgLoss     float64
	Expectancy  float64 // mean P/L per trade
	PnLStdDev   float64
}

// Summarize computes the full stats block. All figures are 0 on an empty
// journal.
func Summarize(recs []journal.TradeRecord) Summary {
	s := Summary{
		Trades:       len(recs),
		WinRate:      WinRate(recs),
		TotalPnL:     TotalPnL(recs),
		ProfitFactor: ProfitFactor(recs),
	}
	if len(recs) == 0 {
		return s
	}

	pnls := make([]float64, 0, len(recs))
	var wins, losses []float64
	for _, r := range recs {
		pnls = append(pnls, r.PnL)
		if r.Outcome == metrics.OutcomeWin {
			s.Wins++
		} else {
			s.Losses++
		}
		if r.PnL > 0 {
			wins = append(wins, r.PnL)
		} else if r.PnL < 0 {
			losses = append(losses, -r.PnL)
		}
	}

	s.GrossProfit, s.GrossLoss = grossProfitLoss(recs)
	if len(wins) > 0 {
		s.AvgWin = stat.Mean(wins, nil)
	}
	if len(losses) > 0 {
		s.AvgLoss = stat.Mean(losses, nil)
	}
	s.Expectancy = stat.Mean(pnls, nil)
	if len(pnls) > 1 {
		s.PnLStdDev = stat.StdDev(pnls, nil)
	}
	return s
}
