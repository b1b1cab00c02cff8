package storage

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/rendis/triptap/internal/model"
)

// Store is a sqlite-backed dataset. Row order of the source file is kept via
// the autoincrement id, so loads come back in original order.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	if err := createSchema(db); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS destinations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		city TEXT NOT NULL,
		zone TEXT,
		type TEXT,
		fee REAL NOT NULL CHECK (fee >= 0),
		rating REAL,
		best_time TEXT,
		dslr TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_destinations_city ON destinations(city);
	CREATE INDEX IF NOT EXISTS idx_destinations_zone ON destinations(zone);
	`
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// ImportBatch inserts destinations in one transaction, skipping rows the
// schema rejects. Returns the number of rows actually inserted.
func (s *Store) ImportBatch(dests []model.Destination) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning tx: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO destinations
		(name, city, zone, type, fee, rating, best_time, dslr)
		VALUES (?,?,?,?,?,?,?,?)
	`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("preparing stmt: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, d := range dests {
		res, err := stmt.Exec(d.Name, d.City, d.Zone, d.Type, d.Fee, d.Rating, d.BestTime, d.DSLR)
		if err != nil {
			continue
		}
		n, _ := res.RowsAffected()
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing tx: %w", err)
	}

	return inserted, nil
}

// LoadAll returns every destination in original insert order.
func (s *Store) LoadAll() ([]model.Destination, error) {
	rows, err := s.db.Query(`
		SELECT name, city, zone, type, fee, rating, best_time, dslr
		FROM destinations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying destinations: %w", err)
	}
	defer rows.Close()

	var dests []model.Destination
	for rows.Next() {
		var d model.Destination
		err := rows.Scan(&d.Name, &d.City, &d.Zone, &d.Type, &d.Fee, &d.Rating, &d.BestTime, &d.DSLR)
		if err != nil {
			continue
		}
		dests = append(dests, d)
	}
	return dests, rows.Err()
}

func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM destinations").Scan(&count)
	return count, err
}

func (s *Store) Close() error {
	return s.db.Close()
}
