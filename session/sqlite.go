package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gridlock-xyz/go-gridlock/eventlog"
)

// SQLiteStore persists sessions and events in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a SQLite store at the
// given path. Use ":memory:" for an ephemeral database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// migrate creates the schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		puzzle TEXT NOT NULL,
		started_at TEXT NOT NULL,
		ended_at TEXT,
		steps INTEGER NOT NULL DEFAULT 0,
		outcome TEXT NOT NULL DEFAULT '',
		solution TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		step INTEGER NOT NULL,
		kind TEXT NOT NULL,
		cell INTEGER NOT NULL,
		digit INTEGER NOT NULL,
		depth INTEGER NOT NULL,
		timestamp TEXT NOT NULL,
		FOREIGN KEY (session_id) REFERENCES sessions(id)
	);

	CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
	CREATE INDEX IF NOT EXISTS idx_events_session_step ON events(session_id, step);
	`

	_, err := s.db.Exec(schema)
	return err
}

// CreateSession records a new session.
func (s *SQLiteStore) CreateSession(ctx context.Context, sess *Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, puzzle, started_at) VALUES (?, ?, ?)`,
		sess.ID, sess.Puzzle, sess.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// EndSession closes a session.
func (s *SQLiteStore) EndSession(ctx context.Context, id, outcome string, steps int, solution string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET ended_at = ?, outcome = ?, steps = ?, solution = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), outcome, steps, solution, id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// AppendEvent records one solver move.
func (s *SQLiteStore) AppendEvent(ctx context.Context, e eventlog.Event) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (session_id, step, kind, cell, digit, depth, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Session, e.Step, e.Kind, e.Cell, e.Digit, e.Depth,
		e.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Session returns a session by ID.
func (s *SQLiteStore) Session(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, puzzle, started_at, ended_at, steps, outcome, solution
		 FROM sessions WHERE id = ?`, id)
	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	return sess, err
}

// Sessions returns all sessions, oldest first.
func (s *SQLiteStore) Sessions(ctx context.Context) ([]*Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, puzzle, started_at, ended_at, steps, outcome, solution
		 FROM sessions ORDER BY started_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

// Events returns a session's move trace in step order.
func (s *SQLiteStore) Events(ctx context.Context, id string) (eventlog.Trace, error) {
	if _, err := s.Session(ctx, id); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, step, kind, cell, digit, depth, timestamp
		 FROM events WHERE session_id = ? ORDER BY step`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tr eventlog.Trace
	for rows.Next() {
		var e eventlog.Event
		var ts string
		if err := rows.Scan(&e.Session, &e.Step, &e.Kind, &e.Cell, &e.Digit, &e.Depth, &ts); err != nil {
			return nil, err
		}
		e.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("event timestamp: %w", err)
		}
		tr = append(tr, e)
	}
	return tr, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var sess Session
	var started string
	var ended sql.NullString
	if err := row.Scan(&sess.ID, &sess.Puzzle, &started, &ended, &sess.Steps, &sess.Outcome, &sess.Solution); err != nil {
		return nil, err
	}

	var err error
	sess.StartedAt, err = time.Parse(time.RFC3339Nano, started)
	if err != nil {
		return nil, fmt.Errorf("started_at: %w", err)
	}
	if ended.Valid {
		t, err := time.Parse(time.RFC3339Nano, ended.String)
		if err != nil {
			return nil, fmt.Errorf("ended_at: %w", err)
		}
		sess.EndedAt = &t
	}
	return &sess, nil
}
