package internal

import (
	"database/sql"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

// ActivationRecord is one row in the workspace activation journal
type ActivationRecord struct {
	ID           int64
	Timestamp    time.Time
	SessionID    string
	Action       string
	CreatedCount int
}

// Journal records workspace activations in a sqlite database under the
// hidden configuration directory. It is observability only: nothing in the
// initializer or loader depends on it.
type Journal struct {
	db   *sql.DB
	path string
}

const journalSchema = `
CREATE TABLE IF NOT EXISTS activations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp TEXT NOT NULL,
	session_id TEXT NOT NULL,
	action TEXT NOT NULL,
	created_count INTEGER NOT NULL DEFAULT 0
)`

// OpenJournal opens (creating when needed) the activation journal for a
// workspace
func OpenJournal(dir string) (*Journal, error) {
	paths := NewWorkspacePaths(dir)

	if err := os.MkdirAll(paths.ConfigDir, 0755); err != nil {
		return nil, &JournalError{Path: paths.ConfigDir, Op: "open", Err: err}
	}

	db, err := sql.Open("sqlite", paths.Journal)
	if err != nil {
		return nil, &JournalError{Path: paths.Journal, Op: "open", Err: err}
	}

	if _, err := db.Exec(journalSchema); err != nil {
		db.Close()
		return nil, &JournalError{Path: paths.Journal, Op: "open", Err: err}
	}

	return &Journal{db: db, path: paths.Journal}, nil
}

// Close closes the underlying database
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends one activation row
func (j *Journal) Record(rec ActivationRecord) error {
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err := j.db.Exec(
		"INSERT INTO activations (timestamp, session_id, action, created_count) VALUES (?, ?, ?, ?)",
		ts.Format(time.RFC3339), rec.SessionID, rec.Action, rec.CreatedCount,
	)
	if err != nil {
		return &JournalError{Path: j.path, Op: "record", Err: err}
	}
	return nil
}

// Recent returns up to limit activation rows, newest first
func (j *Journal) Recent(limit int) ([]ActivationRecord, error) {
	rows, err := j.db.Query(
		"SELECT id, timestamp, session_id, action, created_count FROM activations ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, &JournalError{Path: j.path, Op: "query", Err: err}
	}
	defer rows.Close()

	var records []ActivationRecord
	for rows.Next() {
		var rec ActivationRecord
		var ts string
		if err := rows.Scan(&rec.ID, &ts, &rec.SessionID, &rec.Action, &rec.CreatedCount); err != nil {
			return nil, &JournalError{Path: j.path, Op: "query", Err: err}
		}
		if parsed, perr := time.Parse(time.RFC3339, ts); perr == nil {
			rec.Timestamp = parsed
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, &JournalError{Path: j.path, Op: "query", Err: err}
	}
	return records, nil
}
