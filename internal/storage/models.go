package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no journal row matches.
var ErrNotFound = errors.New("session not found in journal")

// Session is one row of the session journal.
type Session struct {
	ID        string
	Handle    int32
	Command   string
	Cwd       string
	Pid       int
	Cols      uint16
	Rows      uint16
	StartedAt time.Time
	ExitCode  *int32     // nullable, set once the child has been reaped
	ExitedAt  *time.Time // nullable
	ClosedAt  *time.Time // nullable, set when the handle is released
}

// Running reports whether the journal has seen neither an exit nor a close.
func (s *Session) Running() bool {
	return s.ExitCode == nil && s.ClosedAt == nil
}
