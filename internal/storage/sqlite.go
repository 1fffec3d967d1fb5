// Package storage provides SQLite-based persistence for page visits.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only navigation is recorded; generated scenes are never stored.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/turtleshell/internal/config"
)

// Store manages the SQLite database connection for visit history.
type Store struct {
	db *sql.DB
}

// Visit is a single page view.
type Visit struct {
	ID        int64
	Viewer    string
	Heuristic int
	CreatedAt time.Time
}

// HeuristicStat aggregates visits to one heuristic.
type HeuristicStat struct {
	Heuristic   int
	Visits      int
	Viewers     int
	LastVisited time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			viewer TEXT NOT NULL,
			heuristic INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_visits_viewer ON visits(viewer, id DESC);
		CREATE INDEX IF NOT EXISTS idx_visits_heuristic ON visits(heuristic);
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

// RecordVisit stores a page view and returns its ID.
func (s *Store) RecordVisit(viewer string, heuristic int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO visits (viewer, heuristic) VALUES (?, ?)",
		viewer, heuristic,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record visit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LastVisited returns the most recent heuristic a viewer looked at.
// The boolean is false when the viewer has no visits.
func (s *Store) LastVisited(viewer string) (int, bool, error) {
	var heuristic int
	err := s.db.QueryRow(
		"SELECT heuristic FROM visits WHERE viewer = ? ORDER BY id DESC LIMIT 1",
		viewer,
	).Scan(&heuristic)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query last visit: %w", err)
	}
	return heuristic, true, nil
}

// VisitCount returns how many pages a viewer has opened.
func (s *Store) VisitCount(viewer string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM visits WHERE viewer = ?", viewer).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count visits: %w", err)
	}
	return n, nil
}

// RecentVisits returns a viewer's latest visits, newest first.
func (s *Store) RecentVisits(viewer string, limit int) ([]Visit, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, viewer, heuristic, created_at
		 FROM visits
		 WHERE viewer = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		viewer, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var createdAt any
		if err := rows.Scan(&v.ID, &v.Viewer, &v.Heuristic, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		v.CreatedAt = parseTime(createdAt)
		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return visits, nil
}

// TopHeuristics returns the most visited heuristics, busiest first.
// Ties are broken by index so the order is stable.
func (s *Store) TopHeuristics(limit int) ([]HeuristicStat, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT heuristic, COUNT(*), COUNT(DISTINCT viewer), MAX(created_at)
		 FROM visits
		 GROUP BY heuristic
		 ORDER BY COUNT(*) DESC, heuristic ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var stats []HeuristicStat
	for rows.Next() {
		var st HeuristicStat
		var lastVisited any
		if err := rows.Scan(&st.Heuristic, &st.Visits, &st.Viewers, &lastVisited); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastVisited = parseTime(lastVisited)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearViewer deletes a viewer's history.
func (s *Store) ClearViewer(viewer string) error {
	_, err := s.db.Exec("DELETE FROM visits WHERE viewer = ?", viewer)
	if err != nil {
		return fmt.Errorf("storage: cannot clear visits: %w", err)
	}
	return nil
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
