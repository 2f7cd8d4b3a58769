package journal

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rustyeddy/fxjournal/market"
	"github.com/rustyeddy/fxjournal/metrics"
)

var (
	// ErrNotEditing is returned by SaveEdit/CancelEdit outside an edit.
	ErrNotEditing = errors.New("no edit in progress")
	// ErrEditInProgress rejects mutations while an edit is pending.
	ErrEditInProgress = errors.New("an edit is already in progress")
)

// Session owns the journal state for one logged-in user: the ordered trade
// sequence (most recent first), the account balance, and the at-most-one
// pending edit. There is exactly one mutator at a time by construction, so
// no locking. Every mutation writes back to the store before returning; a
// failed write-back surfaces as an error rather than silently diverging
// from persisted state.
type Session struct {
	store Store
	user  string
	log   zerolog.Logger

	trades  []TradeRecord
	balance float64

	editIndex int // -1 when idle
}

// OpenSession loads (seeding on first login) the journal state for user.
func OpenSession(store Store, user string, log zerolog.Logger) (*Session, error) {
	if user == "" {
		return nil, errors.New("user is required")
	}

	ok, err := store.HasUser(user)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !ok {
		if err := store.SaveTrades(user, nil); err != nil {
			return nil, fmt.Errorf("seed trades: %w", err)
		}
		if err := store.SaveBalance(user, DefaultBalance); err != nil {
			return nil, fmt.Errorf("seed balance: %w", err)
		}
		log.Info().Str("user", user).Msg("seeded new journal")
	}

	trades, err := store.Trades(user)
	if err != nil {
		return nil, err
	}
	balance, err := store.Balance(user)
	if err != nil {
		return nil, err
	}

	return &Session{
		store:     store,
		user:      user,
		log:       log,
		trades:    trades,
		balance:   balance,
		editIndex: -1,
	}, nil
}

func (s *Session) User() string    { return s.user }
func (s *Session) Balance() float64 { return s.balance }
func (s *Session) Editing() bool   { return s.editIndex != -1 }

// Trades returns the record sequence, most recent first. Callers must not
// mutate it.
func (s *Session) Trades() []TradeRecord { return s.trades }

// Add derives a record from in and prepends it. The account balance
// absorbs the trade's P/L, matching the running-balance convention.
func (s *Session) Add(in metrics.Input) (TradeRecord, error) {
	if s.Editing() {
		return TradeRecord{}, ErrEditInProgress
	}

	rec, err := NewRecord(in)
	if err != nil {
		return TradeRecord{}, err
	}

	s.trades = append([]TradeRecord{rec}, s.trades...)
	s.balance += rec.PnL

	if err := s.writeBack(); err != nil {
		return TradeRecord{}, err
	}

	s.log.Info().Str("user", s.user).Str("id", rec.ID).
		Str("pair", rec.Pair).Float64("pnl", rec.PnL).Msg("trade added")
	return rec, nil
}

// Delete removes the record at index i and backs its P/L out of the
// balance.
func (s *Session) Delete(i int) (TradeRecord, error) {
	if s.Editing() {
		return TradeRecord{}, ErrEditInProgress
	}
	if i < 0 || i >= len(s.trades) {
		return TradeRecord{}, fmt.Errorf("trade index %d out of range", i)
	}

	rec := s.trades[i]
	s.trades = append(s.trades[:i:i], s.trades[i+1:]...)
	s.balance -= rec.PnL

	if err := s.writeBack(); err != nil {
		return TradeRecord{}, err
	}

	s.log.Info().Str("user", s.user).Str("id", rec.ID).Msg("trade deleted")
	return rec, nil
}

// BeginEdit removes the record at index i from the sequence (so it does
// not double-count in statistics while the edit is pending) and returns a
// draft input populated from it, with stop/target prices reconstructed
// from their stored pip distances.
func (s *Session) BeginEdit(i int) (metrics.Input, error) {
	if s.Editing() {
		return metrics.Input{}, ErrEditInProgress
	}
	if i < 0 || i >= len(s.trades) {
		return metrics.Input{}, fmt.Errorf("trade index %d out of range", i)
	}

	rec := s.trades[i]
	s.trades = append(s.trades[:i:i], s.trades[i+1:]...)
	s.editIndex = i

	dir, err := metrics.ParseDirection(rec.Direction)
	if err != nil {
		// Imported rows are trusted as-is, so a bad direction can reach
		// here; default to long rather than abort the edit.
		dir = metrics.Long
	}
	class := market.Classify(rec.Pair)

	in := metrics.Input{
		Date:      rec.Date,
		Pair:      rec.Pair,
		Direction: dir,
		Entry:     rec.Entry,
		Exit:      rec.Exit,
		Size:      rec.Size,
		Balance:   s.balance,
		Notes:     rec.Notes,
	}
	if rec.StopLossPips > 0 {
		in.StopLoss = metrics.StopPriceFromPips(dir, rec.Entry, rec.StopLossPips, class)
	}
	if rec.TakeProfitPips > 0 {
		in.TakeProfit = metrics.TargetPriceFromPips(dir, rec.Entry, rec.TakeProfitPips, class)
	}
	return in, nil
}

// SaveEdit rebuilds a record from the (possibly modified) draft and
// reinserts it at the position the original occupied.
func (s *Session) SaveEdit(in metrics.Input) (TradeRecord, error) {
	if !s.Editing() {
		return TradeRecord{}, ErrNotEditing
	}

	rec, err := NewRecord(in)
	if err != nil {
		return TradeRecord{}, err
	}

	i := s.editIndex
	if i > len(s.trades) {
		i = len(s.trades)
	}
	s.trades = append(s.trades[:i:i], append([]TradeRecord{rec}, s.trades[i:]...)...)
	s.balance += rec.PnL
	s.editIndex = -1

	if err := s.writeBack(); err != nil {
		return TradeRecord{}, err
	}

	s.log.Info().Str("user", s.user).Str("id", rec.ID).Msg("trade updated")
	return rec, nil
}

// CancelEdit discards the draft and restores the sequence from the last
// persisted snapshot. Deliberately a re-read, not an in-memory backup: the
// persisted state is the source of truth after any aborted edit.
func (s *Session) CancelEdit() error {
	if !s.Editing() {
		return ErrNotEditing
	}

	trades, err := s.store.Trades(s.user)
	if err != nil {
		return fmt.Errorf("restore trades: %w", err)
	}
	balance, err := s.store.Balance(s.user)
	if err != nil {
		return fmt.Errorf("restore balance: %w", err)
	}

	s.trades = trades
	s.balance = balance
	s.editIndex = -1
	return nil
}

// Replace swaps the whole trade sequence (bulk import). The balance is
// left untouched; imported rows carry their own P/L history.
func (s *Session) Replace(recs []TradeRecord) error {
	if s.Editing() {
		return ErrEditInProgress
	}
	if len(recs) == 0 {
		return ErrEmptyImport
	}

	s.trades = recs
	if err := s.writeBack(); err != nil {
		return err
	}

	s.log.Info().Str("user", s.user).Int("trades", len(recs)).Msg("journal replaced")
	return nil
}

// SetBalance overwrites the stored account balance.
func (s *Session) SetBalance(balance float64) error {
	s.balance = balance
	if err := s.store.SaveBalance(s.user, s.balance); err != nil {
		s.log.Error().Err(err).Str("user", s.user).Msg("balance write-back failed")
		return fmt.Errorf("storage unavailable: %w", err)
	}
	return nil
}

// writeBack persists trades and balance synchronously. Losing a saved
// trade silently is unacceptable, so failures are logged and returned.
func (s *Session) writeBack() error {
	if err := s.store.SaveTrades(s.user, s.trades); err != nil {
		s.log.Error().Err(err).Str("user", s.user).Msg("trade write-back failed")
		return fmt.Errorf("storage unavailable: %w", err)
	}
	if err := s.store.SaveBalance(s.user, s.balance); err != nil {
		s.log.Error().Err(err).Str("user", s.user).Msg("balance write-back failed")
		return fmt.Errorf("storage unavailable: %w", err)
	}
	return nil
}
