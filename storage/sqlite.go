// Package storage persists best level runs in SQLite through the pure-Go
// modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/milk9111/platformer/obj"
)

// Store manages the SQLite connection holding level records.
type Store struct {
	db *sql.DB
}

// Entry is one stored level record.
type Entry struct {
	Level     string
	Record    obj.Record
	UpdatedAt time.Time
}

var _ obj.RecordLoader = (*Store)(nil)

// Open creates or opens the database at dbPath, creating parent
// directories and the schema as needed. A leading ~ expands to the home
// directory.
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
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			level TEXT PRIMARY KEY,
			best_time_ns INTEGER NOT NULL,
			gems INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadRecord returns the best run stored for level. ok is false when the
// level has no record yet.
func (s *Store) LoadRecord(level string) (obj.Record, bool, error) {
	var ns int64
	var rec obj.Record
	err := s.db.QueryRow(
		"SELECT best_time_ns, gems FROM records WHERE level = ?",
		level,
	).Scan(&ns, &rec.GemsCollected)
	if errors.Is(err, sql.ErrNoRows) {
		return obj.Record{}, false, nil
	}
	if err != nil {
		return obj.Record{}, false, fmt.Errorf("storage: cannot query record: %w", err)
	}
	rec.BestTime = time.Duration(ns)
	return rec, true, nil
}

// SaveRecord stores rec for level if the level has no record yet or rec
// is strictly faster than the stored one. It reports whether anything was
// written.
func (s *Store) SaveRecord(level string, rec obj.Record) (bool, error) {
	if rec.BestTime <= 0 {
		return false, fmt.Errorf("storage: record time must be positive, got %v", rec.BestTime)
	}

	res, err := s.db.Exec(
		`INSERT INTO records (level, best_time_ns, gems) VALUES (?, ?, ?)
		 ON CONFLICT(level) DO UPDATE SET
			best_time_ns = excluded.best_time_ns,
			gems = excluded.gems,
			updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.best_time_ns < records.best_time_ns`,
		level, int64(rec.BestTime), rec.GemsCollected,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save record: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot count saved rows: %w", err)
	}
	return n > 0, nil
}

// Records lists every stored record ordered by level name.
func (s *Store) Records() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT level, best_time_ns, gems, updated_at
		 FROM records
		 ORDER BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ns int64
		var updatedAt any
		if err := rows.Scan(&e.Level, &ns, &e.Record.GemsCollected, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Record.BestTime = time.Duration(ns)

		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearRecord forgets the record of level.
func (s *Store) ClearRecord(level string) error {
	if _, err := s.db.Exec("DELETE FROM records WHERE level = ?", level); err != nil {
		return fmt.Errorf("storage: cannot clear record: %w", err)
	}
	return nil
}
