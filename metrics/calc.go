// Package metrics is the trade-metrics engine: pure functions that turn raw
// trade inputs (prices, size, direction, instrument) into pips, P/L and
// risk/reward figures. Everything here is deterministic and total over
// finite inputs; an absent exit price yields zero pips and P/L rather than
// an error, since an open trade is a valid preview state.
package metrics

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rustyeddy/fxjournal/market"
)

// ErrMissingEntryPrice rejects a trade submitted without an entry price.
var ErrMissingEntryPrice = errors.New("entry price is required")

// Direction of a trade.
type Direction int

const (
	Long Direction = iota
	Short
)

// String renders the stored wire form ("buy"/"sell").
func (d Direction) String() string {
	if d == Short {
		return "sell"
	}
	return "buy"
}

// ParseDirection accepts the stored forms and the common aliases.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "buy", "long":
		return Long, nil
	case "sell", "short":
		return Short, nil
	}
	return Long, fmt.Errorf("invalid direction %q (want buy or sell)", s)
}

// Pips returns the signed pip move between entry and exit. Zero when the
// exit price is absent (<= 0): the trade is still open.
func Pips(dir Direction, entry, exit float64, class market.Class) float64 {
	if exit <= 0 {
		return 0
	}
	raw := exit - entry
	if dir == Short {
		raw = entry - exit
	}
	return raw * class.PipMultiplier()
}

// StopDistancePips returns the distance from entry to the stop in pips.
// Zero when no stop is set. A stop placed on the wrong side of entry
// produces a negative distance; callers treat that as a misplaced stop,
// not as "no stop".
func StopDistancePips(dir Direction, entry, stop float64, class market.Class) float64 {
	if stop <= 0 {
		return 0
	}
	raw := entry - stop
	if dir == Short {
		raw = stop - entry
	}
	return raw * class.PipMultiplier()
}

// TargetDistancePips returns the distance from entry to the take-profit in
// pips. Zero when no target is set; negative when misplaced.
func TargetDistancePips(dir Direction, entry, target float64, class market.Class) float64 {
	if target <= 0 {
		return 0
	}
	raw := target - entry
	if dir == Short {
		raw = entry - target
	}
	return raw * class.PipMultiplier()
}

// PnL converts a pip move into account currency using the per-instrument
// dollar-per-pip table and the position size in lots.
func PnL(pips, size float64, pair string) float64 {
	return pips * market.DollarPerPip(pair) * size
}

// PnLPercent expresses a P/L as a percentage of the account balance.
// Callers must supply a positive balance; the config default substitutes
// for an empty field.
func PnLPercent(pnl, balance float64) float64 {
	return pnl / balance * 100
}

// RiskReward renders the risk/reward ratio. With a stop but no target the
// reward defaults to 1.00, and with no stop the ratio is undefined ("-").
// Both sentinels are load-bearing for stored records; do not "fix" them.
func RiskReward(stopPips, targetPips float64) string {
	if stopPips <= 0 {
		return "-"
	}
	if targetPips <= 0 {
		return "1.00"
	}
	return strconv.FormatFloat(targetPips/stopPips, 'f', 2, 64)
}

// StopPriceFromPips reconstructs the stop-loss price from a stored pip
// distance. Inverse of StopDistancePips.
func StopPriceFromPips(dir Direction, entry, pips float64, class market.Class) float64 {
	if dir == Short {
		return entry + pips/class.PipMultiplier()
	}
	return entry - pips/class.PipMultiplier()
}

// TargetPriceFromPips reconstructs the take-profit price from a stored pip
// distance. Inverse of TargetDistancePips.
func TargetPriceFromPips(dir Direction, entry, pips float64, class market.Class) float64 {
	if dir == Short {
		return entry - pips/class.PipMultiplier()
	}
	return entry + pips/class.PipMultiplier()
}

// FormatPrice renders a price at the class display precision (3 decimals
// for yen pairs, 5 otherwise).
func FormatPrice(price float64, class market.Class) string {
	return strconv.FormatFloat(price, 'f', class.DisplayDecimals(), 64)
}

// Input is one trade as entered, before any derivation. Exit, StopLoss and
// TakeProfit are prices; zero means not set.
type Input struct {
	Date       string
	Pair       string
	Direction  Direction
	Entry      float64
	Exit       float64
	Size       float64
	Balance    float64
	StopLoss   float64
	TakeProfit float64
	Notes      string
}

// Result is the derived snapshot for one trade.
type Result struct {
	Pips           float64
	PnL            float64
	PnLPercent     float64
	RRRatio        string
	StopLossPips   float64
	TakeProfitPips float64
	Outcome        string
}

// Outcome values. Break-even counts as a win.
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
)

// Compute derives the full metrics snapshot for one trade input. The only
// rejected state is a missing entry price; an absent exit yields the
// zero-valued open-trade snapshot.
func Compute(in Input) (Result, error) {
	if in.Entry <= 0 {
		return Result{}, ErrMissingEntryPrice
	}

	class := market.Classify(in.Pair)

	pips := Pips(in.Direction, in.Entry, in.Exit, class)
	pnl := PnL(pips, in.Size, in.Pair)

	var pct float64
	if in.Exit > 0 {
		pct = PnLPercent(pnl, in.Balance)
	}

	slPips := StopDistancePips(in.Direction, in.Entry, in.StopLoss, class)
	tpPips := TargetDistancePips(in.Direction, in.Entry, in.TakeProfit, class)

	outcome := OutcomeWin
	if pnl < 0 {
		outcome = OutcomeLoss
	}

	return Result{
		Pips:           pips,
		PnL:            pnl,
		PnLPercent:     pct,
		RRRatio:        RiskReward(slPips, tpPips),
		StopLossPips:   slPips,
		TakeProfitPips: tpPips,
		Outcome:        outcome,
	}, nil
}
