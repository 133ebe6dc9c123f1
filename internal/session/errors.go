package session

import (
	"errors"
	"fmt"
)

var (
	// ErrSpawn matches every *SpawnError.
	ErrSpawn = errors.New("spawn failed")
	// ErrIO matches every *IOError.
	ErrIO = errors.New("terminal i/o failed")
	// ErrChildExited reports that the child has terminated. It is a terminal
	// state, not a failure.
	ErrChildExited = errors.New("child exited")
	// ErrClosed is returned when a session's descriptors are already closed.
	ErrClosed = fmt.Errorf("%w: session closed", ErrIO)
	// ErrNotFound is returned for unknown or closed handles.
	ErrNotFound = errors.New("session not found")
	// ErrInvalidSize is returned for zero terminal dimensions.
	ErrInvalidSize = errors.New("cols and rows must be greater than 0")
	// ErrHandlesExhausted is returned once every positive int32 handle has
	// been issued. Handles are never reused.
	ErrHandlesExhausted = errors.New("session handles exhausted")
)

// SpawnError describes a failure while opening a session. No resources
// outlive a SpawnError.
type SpawnError struct {
	Stage string // build, size, start, dup or nonblock
	Err   error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn failed at %s: %v", e.Stage, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

func (e *SpawnError) Is(target error) bool { return target == ErrSpawn }

// IOError describes a failed operation on a live session.
type IOError struct {
	Op  string // read, write, resize, kill or signal
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }
