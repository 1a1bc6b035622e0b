// Package storage keeps finished rounds in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the results database lives unless --db says otherwise.
const DefaultPath = "~/.gorillas/gorillas.db"

// Store manages the SQLite connection.
type Store struct {
	db *sql.DB
}

// Round is one finished round.
type Round struct {
	ID         int64
	Winner     string
	Loser      string
	WinnerSlot int // 1 or 2
	Throws     int
	Wind       int
	Ticks      int
	Seed       int64
	Source     string // "local", "gui" or "ssh"
	CreatedAt  time.Time
}

// Tally is a player's record across stored rounds.
type Tally struct {
	Name   string
	Wins   int
	Losses int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			winner TEXT NOT NULL,
			loser TEXT NOT NULL,
			winner_slot INTEGER NOT NULL,
			throws INTEGER NOT NULL DEFAULT 0,
			wind INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			source TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_winner ON rounds(winner);
		CREATE INDEX IF NOT EXISTS idx_rounds_loser ON rounds(loser);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns its ID.
func (s *Store) SaveRound(r Round) (int64, error) {
	if r.Source == "" {
		r.Source = "local"
	}
	result, err := s.db.Exec(
		`INSERT INTO rounds (winner, loser, winner_slot, throws, wind, ticks, seed, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Winner, r.Loser, r.WinnerSlot, r.Throws, r.Wind, r.Ticks, r.Seed, r.Source,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRounds returns the newest rounds first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, winner, loser, winner_slot, throws, wind, ticks, seed, source, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var out []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Winner, &r.Loser, &r.WinnerSlot, &r.Throws, &r.Wind, &r.Ticks, &r.Seed, &r.Source, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// Tallies returns win/loss counts per player name, best record first.
func (s *Store) Tallies() ([]Tally, error) {
	rows, err := s.db.Query(`
		SELECT name, SUM(win) AS wins, SUM(1 - win) AS losses FROM (
			SELECT winner AS name, 1 AS win FROM rounds
			UNION ALL
			SELECT loser AS name, 0 AS win FROM rounds
		)
		GROUP BY name
		ORDER BY wins DESC, losses ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query tallies: %w", err)
	}
	defer rows.Close()

	var out []Tally
	for rows.Next() {
		var t Tally
		if err := rows.Scan(&t.Name, &t.Wins, &t.Losses); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// CountRounds returns how many rounds are stored.
func (s *Store) CountRounds() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM rounds").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return n, nil
}

// ClearRounds deletes every stored round and returns how many were removed.
func (s *Store) ClearRounds() (int64, error) {
	result, err := s.db.Exec("DELETE FROM rounds")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return result.RowsAffected()
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
