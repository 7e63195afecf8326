// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: snapshot/store.go
// Summary: SQLite-backed store of exported console stacks.
// Usage: cmd/texelcon saves ctx.ToXPFile output on F12 and lists snapshots.
// Notes: Each snapshot keeps the gzip .xp payload plus a SHA-1 of it for
// integrity checks on load.

// Package snapshot persists REX Paint exports of a render context in SQLite.
package snapshot

import (
	"bytes"
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/framegrace/texelcon/internal/syncutil"
	"github.com/framegrace/texelcon/rex"
)

var (
	ErrNotFound = errors.New("snapshot: not found")
	ErrCorrupt  = errors.New("snapshot: hash mismatch")
	ErrClosed   = errors.New("snapshot: store closed")
)

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS snapshots (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    created_at INTEGER NOT NULL,      -- UnixNano
    layers INTEGER NOT NULL,
    width INTEGER NOT NULL,           -- first layer
    height INTEGER NOT NULL,
    hash TEXT NOT NULL,
    data BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_created ON snapshots(created_at);
`

// Record describes a stored snapshot without its payload.
type Record struct {
	ID        string
	Title     string
	CreatedAt time.Time
	Layers    int
	Width     int
	Height    int
	Hash      string
}

// Option customises a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp snapshots.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// Store is safe for concurrent use.
type Store struct {
	db    *sql.DB
	clock clockwork.Clock

	mu     syncutil.Mutex
	closed bool
}

// Open creates or opens the database at path. ":memory:" opens a private
// in-memory database.
func Open(path string, opts ...Option) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("snapshot: create directory: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("snapshot: connect: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("snapshot: create schema: %w", err)
	}
	if err := checkSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db, clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(s)
	}
	log.Debug().Str("path", path).Msg("snapshot: store opened")
	return s, nil
}

func checkSchema(db *sql.DB) error {
	var current int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("snapshot: read schema version: %w", err)
	}
	if current == schemaVersion {
		return nil
	}
	if current > schemaVersion {
		return fmt.Errorf("snapshot: schema version %d is newer than supported %d", current, schemaVersion)
	}
	log.Info().Int("from", current).Int("to", schemaVersion).Msg("snapshot: migrating schema")
	if _, err := db.Exec("INSERT OR REPLACE INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("snapshot: update schema version: %w", err)
	}
	return nil
}

func (s *Store) live() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

func hashOf(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// Save encodes f and stores it under a new id.
func (s *Store) Save(ctx context.Context, title string, f *rex.File) (Record, error) {
	if err := s.live(); err != nil {
		return Record{}, err
	}
	var buf bytes.Buffer
	if err := rex.Write(&buf, f); err != nil {
		return Record{}, fmt.Errorf("snapshot: encode: %w", err)
	}
	data := buf.Bytes()

	rec := Record{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: s.clock.Now().UTC(),
		Layers:    len(f.Layers),
		Hash:      hashOf(data),
	}
	if len(f.Layers) > 0 {
		rec.Width, rec.Height = f.Layers[0].Width, f.Layers[0].Height
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, title, created_at, layers, width, height, hash, data)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Title, rec.CreatedAt.UnixNano(), rec.Layers, rec.Width, rec.Height, rec.Hash, data)
	if err != nil {
		return Record{}, fmt.Errorf("snapshot: insert: %w", err)
	}
	log.Debug().Str("id", rec.ID).Str("title", title).Int("layers", rec.Layers).Msg("snapshot: saved")
	return rec, nil
}

const recordColumns = "id, title, created_at, layers, width, height, hash"

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner, extra ...interface{}) (Record, error) {
	var rec Record
	var created int64
	dest := append([]interface{}{&rec.ID, &rec.Title, &created, &rec.Layers, &rec.Width, &rec.Height, &rec.Hash}, extra...)
	if err := row.Scan(dest...); err != nil {
		return Record{}, err
	}
	rec.CreatedAt = time.Unix(0, created).UTC()
	return rec, nil
}

func (s *Store) loadRow(row *sql.Row) (Record, *rex.File, error) {
	var data []byte
	rec, err := scanRecord(row, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, nil, ErrNotFound
	}
	if err != nil {
		return Record{}, nil, fmt.Errorf("snapshot: query: %w", err)
	}
	if hashOf(data) != rec.Hash {
		return rec, nil, fmt.Errorf("%w: %s", ErrCorrupt, rec.ID)
	}
	f, err := rex.Read(bytes.NewReader(data))
	if err != nil {
		return rec, nil, fmt.Errorf("snapshot: decode %s: %w", rec.ID, err)
	}
	return rec, f, nil
}

// Load returns the snapshot with the given id.
func (s *Store) Load(ctx context.Context, id string) (Record, *rex.File, error) {
	if err := s.live(); err != nil {
		return Record{}, nil, err
	}
	row := s.db.QueryRowContext(ctx,
		"SELECT "+recordColumns+", data FROM snapshots WHERE id = ?", id)
	return s.loadRow(row)
}

// Latest returns the most recently saved snapshot.
func (s *Store) Latest(ctx context.Context) (Record, *rex.File, error) {
	if err := s.live(); err != nil {
		return Record{}, nil, err
	}
	row := s.db.QueryRowContext(ctx,
		"SELECT "+recordColumns+", data FROM snapshots ORDER BY created_at DESC, rowid DESC LIMIT 1")
	return s.loadRow(row)
}

// List returns every record, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	if err := s.live(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM snapshots ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("snapshot: list: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("snapshot: scan: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close releases the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	return s.db.Close()
}
