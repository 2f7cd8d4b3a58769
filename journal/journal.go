// Package journal holds the persisted trade record, the storage
// collaborator it lives in, and the session that owns the in-memory
// record sequence for one logged-in user.
package journal

import (
	"errors"

	"github.com/rustyeddy/fxjournal/metrics"
	"github.com/rustyeddy/fxjournal/pkg/id"
)

// DefaultBalance seeds a user's account the first time they log in.
const DefaultBalance = 10000

// ErrEmptyImport means a bulk import produced no usable rows; the journal
// is left untouched.
var ErrEmptyImport = errors.New("no valid trade rows in import file")

// TradeRecord is one completed (or still-open) trade as persisted. The
// JSON tags are the storage contract for the trades_<user> array and must
// not change shape. A record is immutable once built; editing removes it
// and rebuilds a fresh one from a new input.
type TradeRecord struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"` // YYYY-MM-DD, no time component
	Pair           string  `json:"pair"`
	Direction      string  `json:"type"` // "buy" or "sell"
	Entry          float64 `json:"entry"`
	Exit           float64 `json:"exit"` // 0 = still open
	Size           float64 `json:"size"` // lots
	Pips           float64 `json:"pips"`
	PnL            float64 `json:"pnl"`
	PnLPercent     float64 `json:"pnlPercent"`
	RRRatio        string  `json:"rrRatio"` // "-" when no stop was set
	TakeProfitPips float64 `json:"takeProfit"`
	StopLossPips   float64 `json:"stopLoss"`
	Notes          string  `json:"notes"`
	Outcome        string  `json:"outcome"` // "win" or "loss"
}

// NewRecord derives a TradeRecord from a raw input via the metrics engine
// and assigns it a fresh ULID.
func NewRecord(in metrics.Input) (TradeRecord, error) {
	res, err := metrics.Compute(in)
	if err != nil {
		return TradeRecord{}, err
	}

	return TradeRecord{
		ID:             id.New(),
		Date:           in.Date,
		Pair:           in.Pair,
		Direction:      in.Direction.String(),
		Entry:          in.Entry,
		Exit:           in.Exit,
		Size:           in.Size,
		Pips:           res.Pips,
		PnL:            res.PnL,
		PnLPercent:     res.PnLPercent,
		RRRatio:        res.RRRatio,
		TakeProfitPips: res.TakeProfitPips,
		StopLossPips:   res.StopLossPips,
		Notes:          in.Notes,
		Outcome:        res.Outcome,
	}, nil
}

// Store is the key-value storage collaborator, namespaced per user. Reads
// return the last write; a user that was never written reads back as an
// empty trade list and the default balance.
type Store interface {
	HasUser(user string) (bool, error)
	Trades(user string) ([]TradeRecord, error)
	SaveTrades(user string, recs []TradeRecord) error
	Balance(user string) (float64, error)
	SaveBalance(user string, balance float64) error

	// DarkMode is a global display preference, not per-user.
	DarkMode() (bool, error)
	SetDarkMode(enabled bool) error

	Close() error
}
