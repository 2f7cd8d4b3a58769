package journal

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	s, err := OpenSQLite(path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	s, path := newTestStore(t)
	assert.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='kv'`).Scan(&name)
	assert.NoError(t, err)
	assert.Equal(t, "kv", name)
}

func TestSQLiteTradesRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	recs := []TradeRecord{
		{
			ID: "01HTEST", Date: "2024-01-15", Pair: "EUR/USD",
			Direction: "buy", Entry: 1.1, Exit: 1.105, Size: 1,
			Pips: 50, PnL: 500, PnLPercent: 5, RRRatio: "-",
			Notes: "breakout", Outcome: "win",
		},
		{
			ID: "01HTES2", Date: "2024-01-16", Pair: "USD/JPY",
			Direction: "sell", Entry: 110, Exit: 110.5, Size: 0.5,
			Pips: -50, PnL: -175, PnLPercent: -1.75, RRRatio: "2.00",
			StopLossPips: 20, TakeProfitPips: 40, Outcome: "loss",
		},
	}

	assert.NoError(t, s.SaveTrades("alice", recs))

	got, err := s.Trades("alice")
	assert.NoError(t, err)
	assert.Equal(t, recs, got)
}

func TestSQLiteAbsentUser(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	ok, err := s.HasUser("nobody")
	assert.NoError(t, err)
	assert.False(t, ok)

	// Absent keys read as the documented defaults.
	recs, err := s.Trades("nobody")
	assert.NoError(t, err)
	assert.Empty(t, recs)

	bal, err := s.Balance("nobody")
	assert.NoError(t, err)
	assert.Equal(t, float64(DefaultBalance), bal)
}

func TestSQLiteBalance(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	assert.NoError(t, s.SaveBalance("alice", 12345.67))
	bal, err := s.Balance("alice")
	assert.NoError(t, err)
	assert.Equal(t, 12345.67, bal)

	// Last write wins.
	assert.NoError(t, s.SaveBalance("alice", 100))
	bal, err = s.Balance("alice")
	assert.NoError(t, err)
	assert.Equal(t, float64(100), bal)
}

func TestSQLitePerUserNamespacing(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	assert.NoError(t, s.SaveTrades("alice", []TradeRecord{{ID: "A", Date: "2024-01-01"}}))
	assert.NoError(t, s.SaveTrades("bob", []TradeRecord{{ID: "B", Date: "2024-02-02"}}))

	a, err := s.Trades("alice")
	assert.NoError(t, err)
	b, err := s.Trades("bob")
	assert.NoError(t, err)

	assert.Len(t, a, 1)
	assert.Len(t, b, 1)
	assert.Equal(t, "A", a[0].ID)
	assert.Equal(t, "B", b[0].ID)
}

func TestSQLiteDarkMode(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	// Unset reads as disabled.
	on, err := s.DarkMode()
	assert.NoError(t, err)
	assert.False(t, on)

	assert.NoError(t, s.SetDarkMode(true))
	on, err = s.DarkMode()
	assert.NoError(t, err)
	assert.True(t, on)

	assert.NoError(t, s.SetDarkMode(false))
	on, err = s.DarkMode()
	assert.NoError(t, err)
	assert.False(t, on)
}
