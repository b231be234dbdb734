// Package store persists save slots in SQLite
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

var (
	ErrSlotNotFound = errors.New("save slot not found")
	ErrInvalidSlot  = errors.New("save slot must be positive")
	ErrNotOpen      = errors.New("store is not open")
)

// SlotInfo describes an occupied save slot
type SlotInfo struct {
	Slot    int
	SavedAt time.Time
	Size    int
}

// Store is the SQLite-backed snapshot store
type Store struct {
	db *sql.DB
}

// Open opens and migrates the database at path
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := MemoryPath
	if path != MemoryPath {
		dsn = "file:" + filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// In-memory databases are per connection
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveSnapshot upserts the payload of slot
func (s *Store) SaveSnapshot(ctx context.Context, slot int, payload []byte) error {
	if s == nil || s.db == nil {
		return ErrNotOpen
	}
	if slot < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (slot, payload, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
		    payload = excluded.payload,
		    saved_at = excluded.saved_at`,
		slot, payload, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	return nil
}

// LoadSnapshot returns the payload of slot; found is false for an empty slot
func (s *Store) LoadSnapshot(ctx context.Context, slot int) ([]byte, bool, error) {
	if s == nil || s.db == nil {
		return nil, false, ErrNotOpen
	}
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE slot = ?`, slot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load slot %d: %w", slot, err)
	}
	return payload, true, nil
}

// ListSlots returns occupied slots in ascending order
func (s *Store) ListSlots(ctx context.Context) ([]SlotInfo, error) {
	if s == nil || s.db == nil {
		return nil, ErrNotOpen
	}
	rows, err := s.db.QueryContext(ctx, `SELECT slot, saved_at, length(payload) FROM snapshots ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var out []SlotInfo
	for rows.Next() {
		var info SlotInfo
		var savedAt int64
		if err := rows.Scan(&info.Slot, &savedAt, &info.Size); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		info.SavedAt = time.UnixMilli(savedAt).UTC()
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return out, nil
}

// DeleteSlot clears a slot
func (s *Store) DeleteSlot(ctx context.Context, slot int) error {
	if s == nil || s.db == nil {
		return ErrNotOpen
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("delete slot %d: %w", slot, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete slot %d: %w", slot, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrSlotNotFound, slot)
	}
	return nil
}
