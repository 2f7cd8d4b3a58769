package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

// The storage contract is a flat string-to-string map (localStorage-style
// keys: trades_<user>, balance_<user>, darkMode), so the schema is a single
// kv table rather than one table per entity.
const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

const (
	tradesKeyPrefix  = "trades_"
	balanceKeyPrefix = "balance_"
	darkModeKey      = "darkMode"
)

// SQLiteStore implements Store over a single-file SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the journal database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *SQLiteStore) HasUser(user string) (bool, error) {
	_, ok, err := s.get(tradesKeyPrefix + user)
	return ok, err
}

func (s *SQLiteStore) Trades(user string) ([]TradeRecord, error) {
	raw, ok, err := s.get(tradesKeyPrefix + user)
	if err != nil {
		return nil, fmt.Errorf("read trades: %w", err)
	}
	if !ok {
		return []TradeRecord{}, nil
	}

	var recs []TradeRecord
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		return nil, fmt.Errorf("decode trades for %q: %w", user, err)
	}
	if recs == nil {
		recs = []TradeRecord{}
	}
	return recs, nil
}

func (s *SQLiteStore) SaveTrades(user string, recs []TradeRecord) error {
	if recs == nil {
		recs = []TradeRecord{}
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode trades: %w", err)
	}
	if err := s.set(tradesKeyPrefix+user, string(raw)); err != nil {
		return fmt.Errorf("write trades: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Balance(user string) (float64, error) {
	raw, ok, err := s.get(balanceKeyPrefix + user)
	if err != nil {
		return 0, fmt.Errorf("read balance: %w", err)
	}
	if !ok {
		return DefaultBalance, nil
	}
	bal, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("decode balance for %q: %w", user, err)
	}
	return bal, nil
}

func (s *SQLiteStore) SaveBalance(user string, balance float64) error {
	v := strconv.FormatFloat(balance, 'f', -1, 64)
	if err := s.set(balanceKeyPrefix+user, v); err != nil {
		return fmt.Errorf("write balance: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DarkMode() (bool, error) {
	raw, ok, err := s.get(darkModeKey)
	if err != nil {
		return false, fmt.Errorf("read dark mode: %w", err)
	}
	return ok && raw == "enabled", nil
}

func (s *SQLiteStore) SetDarkMode(enabled bool) error {
	v := "disabled"
	if enabled {
		v = "enabled"
	}
	if err := s.set(darkModeKey, v); err != nil {
		return fmt.Errorf("write dark mode: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
