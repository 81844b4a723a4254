// Package journal persists applied rename batches in SQLite so the most
// recent batch can be undone later, across process restarts.
package journal

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Journal wraps the SQLite history database.
type Journal struct {
	conn *sql.DB
}

// Batch identifies one applied rename run.
type Batch struct {
	ID        string
	Root      string
	CreatedAt time.Time
}

// Entry is a single committed rename within a batch.
type Entry struct {
	OldPath string
	NewPath string
}

// Open opens or creates the history database at dbPath and ensures the
// schema exists.
func Open(dbPath string) (*Journal, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	j := &Journal{conn: conn}
	if err := j.initialize(); err != nil {
		conn.Close()
		return nil, err
	}
	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.conn.Close()
}

func (j *Journal) initialize() error {
	schema := `
		CREATE TABLE IF NOT EXISTS batches (
			id TEXT PRIMARY KEY,
			root TEXT,
			created_at DATETIME
		);

		CREATE TABLE IF NOT EXISTS entries (
			batch_id TEXT REFERENCES batches(id),
			seq INTEGER,
			old_path TEXT,
			new_path TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_entries_batch ON entries(batch_id);
	`
	_, err := j.conn.Exec(schema)
	return err
}

// RecordBatch stores entries under a fresh batch ID and returns it. The
// insertion order of entries is preserved for ordered replay.
func (j *Journal) RecordBatch(root string, entries []Entry) (string, error) {
	tx, err := j.conn.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	id := uuid.NewString()
	if _, err := tx.Exec(`
		INSERT INTO batches (id, root, created_at)
		VALUES (?, ?, ?)
	`, id, root, time.Now()); err != nil {
		return "", err
	}

	for seq, e := range entries {
		if _, err := tx.Exec(`
			INSERT INTO entries (batch_id, seq, old_path, new_path)
			VALUES (?, ?, ?, ?)
		`, id, seq, e.OldPath, e.NewPath); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// LastBatch returns the most recently recorded batch, or nil when the
// journal is empty.
func (j *Journal) LastBatch() (*Batch, error) {
	row := j.conn.QueryRow(`
		SELECT id, root, created_at
		FROM batches
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`)

	var b Batch
	if err := row.Scan(&b.ID, &b.Root, &b.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// Entries returns a batch's renames in their recorded order.
func (j *Journal) Entries(batchID string) ([]Entry, error) {
	rows, err := j.conn.Query(`
		SELECT old_path, new_path
		FROM entries
		WHERE batch_id = ?
		ORDER BY seq
	`, batchID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.OldPath, &e.NewPath); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// BatchCount returns the number of recorded batches.
func (j *Journal) BatchCount() (int, error) {
	var count int
	err := j.conn.QueryRow("SELECT COUNT(*) FROM batches").Scan(&count)
	return count, err
}

// DeleteBatch removes a batch and its entries.
func (j *Journal) DeleteBatch(id string) error {
	tx, err := j.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries WHERE batch_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM batches WHERE id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}
