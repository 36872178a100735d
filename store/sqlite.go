package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteBackend keeps the snapshot as rows of a key-value table
type SQLiteBackend struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates the database at path and ensures the kv table exists
func OpenSQLite(path string) (*SQLiteBackend, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(kvSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteBackend{db: db, path: path}, nil
}

// Path returns the database file location
func (b *SQLiteBackend) Path() string { return b.path }

// Load reads both keys, absent rows yield zero values
func (b *SQLiteBackend) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	raw, err := b.get(ctx, KeyNames)
	if err != nil {
		return snap, err
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &snap.Names); err != nil {
			return Snapshot{}, fmt.Errorf("decode %s: %w", KeyNames, err)
		}
	}

	if snap.Winner, err = b.get(ctx, KeyWinner); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (b *SQLiteBackend) get(ctx context.Context, key string) (string, error) {
	var value string
	err := b.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

// Save writes both keys in one transaction; an empty winner removes its row
func (b *SQLiteBackend) Save(ctx context.Context, snap Snapshot) (err error) {
	names := snap.Names
	if names == nil {
		names = []string{}
	}
	encoded, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyNames, err)
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const upsert = `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err = tx.ExecContext(ctx, upsert, KeyNames, string(encoded)); err != nil {
		return fmt.Errorf("write %s: %w", KeyNames, err)
	}
	if snap.Winner == "" {
		_, err = tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, KeyWinner)
	} else {
		_, err = tx.ExecContext(ctx, upsert, KeyWinner, snap.Winner)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", KeyWinner, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close releases the database handle
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
