package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"freetoolz-blueprint/internal/models"
)

var ErrNotFound = errors.New("record not found")

// Run describes one saved generation.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Tools     int       `json:"tools"`
}

// Store keeps the latest blueprint in SQLite. Each SaveRun replaces the
// previous record set; the runs table keeps the history.
type Store struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Open opens a SQLite database with WAL mode enabled and creates the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, entropy: ulid.Monotonic(rand.Reader, 0)}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	tools INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS records (
	position INTEGER PRIMARY KEY,
	run_id TEXT NOT NULL,
	slug TEXT NOT NULL,
	tool TEXT NOT NULL,
	category TEXT NOT NULL,
	data TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_slug ON records(slug);
CREATE INDEX IF NOT EXISTS idx_records_category ON records(category);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun replaces the stored records with records in a single transaction
// and returns the new run ID.
func (s *Store) SaveRun(ctx context.Context, records []models.ContentRecord) (string, error) {
	now := time.Now().UTC()
	s.mu.Lock()
	id := ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
	s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return "", fmt.Errorf("clear records: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO runs (id, created_at, tools) VALUES (?, ?, ?)",
		id, now.Format(time.RFC3339Nano), len(records)); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO records (position, run_id, slug, tool, category, data) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return "", fmt.Errorf("marshal %q: %w", rec.Tool, err)
		}
		if _, err := stmt.ExecContext(ctx, i, id, rec.Slug, rec.Tool, rec.Category, string(data)); err != nil {
			return "", fmt.Errorf("insert %q: %w", rec.Tool, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// Records returns the stored records in generation order. A non-empty
// category restricts the result to that category.
func (s *Store) Records(ctx context.Context, category string) ([]models.ContentRecord, error) {
	query := "SELECT data FROM records ORDER BY position"
	var args []any
	if category != "" {
		query = "SELECT data FROM records WHERE category = ? ORDER BY position"
		args = append(args, category)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ContentRecord{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var rec models.ContentRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Record returns the first stored record with the given slug.
func (s *Store) Record(ctx context.Context, slug string) (models.ContentRecord, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM records WHERE slug = ? ORDER BY position LIMIT 1", slug).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ContentRecord{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	if err != nil {
		return models.ContentRecord{}, err
	}
	var rec models.ContentRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return models.ContentRecord{}, err
	}
	return rec, nil
}

// LatestRun returns the most recent run, or ErrNotFound when nothing has
// been saved yet.
func (s *Store) LatestRun(ctx context.Context) (Run, error) {
	var (
		run     Run
		created string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, created_at, tools FROM runs ORDER BY id DESC LIMIT 1").Scan(&run.ID, &created, &run.Tools)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	if err != nil {
		return Run{}, err
	}
	run.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Run{}, fmt.Errorf("parse run time: %w", err)
	}
	return run, nil
}
