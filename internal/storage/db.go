package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Memory opens a private in-memory database.
const Memory = ":memory:"

// DB wraps the SQLite database connection holding the session journal.
type DB struct {
	conn *sql.DB
}

// NewDB opens/creates a SQLite database at the given path and initializes schema.
// Pass Memory for an in-memory database (useful for tests).
func NewDB(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == Memory {
		// Every pooled connection would otherwise get its own empty database.
		conn.SetMaxOpenConns(1)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// initSchema creates the necessary tables if they don't exist. Lifecycle
// events may arrive out of order, so every column but the id has a default.
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		handle INTEGER NOT NULL DEFAULT 0,
		command TEXT NOT NULL DEFAULT '',
		cwd TEXT NOT NULL DEFAULT '',
		pid INTEGER NOT NULL DEFAULT 0,
		cols INTEGER NOT NULL DEFAULT 0,
		rows INTEGER NOT NULL DEFAULT 0,
		started_at INTEGER NOT NULL DEFAULT 0,
		exit_code INTEGER,
		exited_at INTEGER,
		closed_at INTEGER
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// RecordOpened stores the launch details of a session.
func (db *DB) RecordOpened(ctx context.Context, s *Session) error {
	query := `
		INSERT INTO sessions (id, handle, command, cwd, pid, cols, rows, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			handle = excluded.handle,
			command = excluded.command,
			cwd = excluded.cwd,
			pid = excluded.pid,
			cols = excluded.cols,
			rows = excluded.rows,
			started_at = excluded.started_at
	`

	_, err := db.conn.ExecContext(ctx, query,
		s.ID,
		s.Handle,
		s.Command,
		s.Cwd,
		s.Pid,
		s.Cols,
		s.Rows,
		s.StartedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to record opened session: %w", err)
	}
	return nil
}

// RecordExited stores the exit status of a session.
func (db *DB) RecordExited(ctx context.Context, id string, exitCode int32, at time.Time) error {
	query := `
		INSERT INTO sessions (id, exit_code, exited_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			exit_code = excluded.exit_code,
			exited_at = excluded.exited_at
	`

	if _, err := db.conn.ExecContext(ctx, query, id, exitCode, at.UnixMilli()); err != nil {
		return fmt.Errorf("failed to record exit: %w", err)
	}
	return nil
}

// RecordClosed stores the time the session's handle was released.
func (db *DB) RecordClosed(ctx context.Context, id string, at time.Time) error {
	query := `
		INSERT INTO sessions (id, closed_at)
		VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET closed_at = excluded.closed_at
	`

	if _, err := db.conn.ExecContext(ctx, query, id, at.UnixMilli()); err != nil {
		return fmt.Errorf("failed to record close: %w", err)
	}
	return nil
}

// CloseDangling marks every session that was never closed as closed at the
// given time. Sessions do not survive a restart, so rows left open by a
// previous process are stale. It returns the number of rows touched.
func (db *DB) CloseDangling(ctx context.Context, at time.Time) (int64, error) {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE sessions SET closed_at = ? WHERE closed_at IS NULL`, at.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to close dangling sessions: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n, nil
}

// RecentSessions retrieves the N most recently started sessions.
func (db *DB) RecentSessions(ctx context.Context, limit int) ([]*Session, error) {
	query := `
		SELECT id, handle, command, cwd, pid, cols, rows, started_at, exit_code, exited_at, closed_at
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`

	rows, err := db.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return sessions, nil
}

// GetSession retrieves one session by id.
func (db *DB) GetSession(ctx context.Context, id string) (*Session, error) {
	query := `
		SELECT id, handle, command, cwd, pid, cols, rows, started_at, exit_code, exited_at, closed_at
		FROM sessions
		WHERE id = ?
	`

	s, err := scanSession(db.conn.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var s Session
	var startedAt int64
	var exitCode, exitedAt, closedAt sql.NullInt64

	err := row.Scan(
		&s.ID,
		&s.Handle,
		&s.Command,
		&s.Cwd,
		&s.Pid,
		&s.Cols,
		&s.Rows,
		&startedAt,
		&exitCode,
		&exitedAt,
		&closedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan session row: %w", err)
	}

	if startedAt != 0 {
		s.StartedAt = time.UnixMilli(startedAt)
	}
	if exitCode.Valid {
		code := int32(exitCode.Int64)
		s.ExitCode = &code
	}
	s.ExitedAt = nullTime(exitedAt)
	s.ClosedAt = nullTime(closedAt)

	return &s, nil
}

func nullTime(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64)
	return &t
}
