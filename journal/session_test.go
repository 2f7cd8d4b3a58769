package journal

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rustyeddy/fxjournal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()

	store, _ := newTestStore(t)
	s, err := OpenSession(store, "tester", zerolog.Nop())
	require.NoError(t, err)
	return s
}

func eurusdLong(exit float64) metrics.Input {
	return metrics.Input{
		Date: "2024-01-15", Pair: "EUR/USD", Direction: metrics.Long,
		Entry: 1.10000, Exit: exit, Size: 1.0, Balance: 10000,
	}
}

func TestOpenSessionSeedsNewUser(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	s, err := OpenSession(store, "fresh", zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, s.Trades())
	assert.Equal(t, float64(DefaultBalance), s.Balance())

	// The seed is persisted, not just in memory.
	ok, err := store.HasUser("fresh")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestOpenSessionRequiresUser(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	_, err := OpenSession(store, "", zerolog.Nop())
	assert.Error(t, err)
}

func TestSessionAddPrepends(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	first, err := s.Add(eurusdLong(1.10050))
	require.NoError(t, err)
	second, err := s.Add(eurusdLong(1.09950))
	require.NoError(t, err)

	trades := s.Trades()
	require.Len(t, trades, 2)
	assert.Equal(t, second.ID, trades[0].ID)
	assert.Equal(t, first.ID, trades[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSessionBalanceFollowsPnL(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	// +50 pips on EUR/USD at 1 lot = +500.
	_, err := s.Add(eurusdLong(1.10500))
	require.NoError(t, err)
	assert.InDelta(t, 10500, s.Balance(), 1e-9)

	// Deleting backs the P/L out again.
	_, err = s.Delete(0)
	require.NoError(t, err)
	assert.InDelta(t, 10000, s.Balance(), 1e-9)
}

func TestSessionDeleteOutOfRange(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	_, err := s.Delete(0)
	assert.Error(t, err)
}

func TestSessionMutationsArePersisted(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	s, err := OpenSession(store, "tester", zerolog.Nop())
	require.NoError(t, err)

	rec, err := s.Add(eurusdLong(1.10050))
	require.NoError(t, err)

	// A second session over the same store sees the write-back.
	s2, err := OpenSession(store, "tester", zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, s2.Trades(), 1)
	assert.Equal(t, rec, s2.Trades()[0])
	assert.InDelta(t, s.Balance(), s2.Balance(), 1e-9)
}

func TestSessionEditSaveReinsertsAtOriginalIndex(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	for _, exit := range []float64{1.10010, 1.10020, 1.10030} {
		_, err := s.Add(eurusdLong(exit))
		require.NoError(t, err)
	}
	// Most recent first: exits are 1.10030, 1.10020, 1.10010.

	draft, err := s.BeginEdit(1)
	require.NoError(t, err)
	assert.True(t, s.Editing())
	assert.Len(t, s.Trades(), 2)
	assert.InDelta(t, 1.10020, draft.Exit, 1e-9)

	draft.Exit = 1.10099
	rec, err := s.SaveEdit(draft)
	require.NoError(t, err)
	assert.False(t, s.Editing())

	trades := s.Trades()
	require.Len(t, trades, 3)
	assert.Equal(t, rec.ID, trades[1].ID)
	assert.InDelta(t, 1.10099, trades[1].Exit, 1e-9)
}

func TestSessionEditCancelRestoresVerbatim(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	for _, exit := range []float64{1.10010, 1.10020, 1.10030} {
		_, err := s.Add(eurusdLong(exit))
		require.NoError(t, err)
	}

	before := append([]TradeRecord(nil), s.Trades()...)
	balanceBefore := s.Balance()

	draft, err := s.BeginEdit(1)
	require.NoError(t, err)
	draft.Exit = 9.99999 // draft changes must not leak

	require.NoError(t, s.CancelEdit())
	assert.False(t, s.Editing())

	// Byte-identical restoration at the original index.
	assert.Equal(t, before, s.Trades())
	assert.InDelta(t, balanceBefore, s.Balance(), 1e-9)
}

func TestSessionEditDraftReconstructsStopAndTarget(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	in := eurusdLong(1.10050)
	in.StopLoss = 1.09900  // 10 pips
	in.TakeProfit = 1.10200 // 20 pips
	_, err := s.Add(in)
	require.NoError(t, err)

	draft, err := s.BeginEdit(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.09900, draft.StopLoss, 1e-6)
	assert.InDelta(t, 1.10200, draft.TakeProfit, 1e-6)
}

func TestSessionEditStateMachine(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	_, err := s.Add(eurusdLong(1.10050))
	require.NoError(t, err)

	// Save/cancel outside an edit are refused.
	_, err = s.SaveEdit(eurusdLong(1.10050))
	assert.ErrorIs(t, err, ErrNotEditing)
	assert.ErrorIs(t, s.CancelEdit(), ErrNotEditing)

	// One pending edit at most; other mutations are blocked meanwhile.
	_, err = s.BeginEdit(0)
	require.NoError(t, err)

	_, err = s.BeginEdit(0)
	assert.ErrorIs(t, err, ErrEditInProgress)
	_, err = s.Add(eurusdLong(1.10050))
	assert.ErrorIs(t, err, ErrEditInProgress)
	_, err = s.Delete(0)
	assert.ErrorIs(t, err, ErrEditInProgress)
	assert.ErrorIs(t, s.Replace([]TradeRecord{{Date: "2024-01-01"}}), ErrEditInProgress)

	require.NoError(t, s.CancelEdit())
}

func TestSessionReplace(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	_, err := s.Add(eurusdLong(1.10050))
	require.NoError(t, err)

	// An empty import leaves the journal untouched.
	assert.ErrorIs(t, s.Replace(nil), ErrEmptyImport)
	assert.Len(t, s.Trades(), 1)

	imported := []TradeRecord{
		{ID: "X1", Date: "2023-12-01", Pair: "GBP/USD", Outcome: "win"},
		{ID: "X2", Date: "2023-12-02", Pair: "USD/JPY", Outcome: "loss"},
	}
	require.NoError(t, s.Replace(imported))
	assert.Equal(t, imported, s.Trades())
}

func TestSessionSetBalance(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	s, err := OpenSession(store, "tester", zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, s.SetBalance(50000))
	assert.Equal(t, float64(50000), s.Balance())

	bal, err := store.Balance("tester")
	assert.NoError(t, err)
	assert.Equal(t, float64(50000), bal)
}

func TestSessionAddRejectsMissingEntry(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	in := eurusdLong(1.10050)
	in.Entry = 0
	_, err := s.Add(in)
	assert.ErrorIs(t, err, metrics.ErrMissingEntryPrice)
	assert.Empty(t, s.Trades())
}
