package session

import (
	"time"

	"github.com/creack/pty"
	"go.uber.org/zap"

	"github.com/monotykamary/openmux-pty/internal/metrics"
)

// Handle identifies a session across the external boundary. Valid handles
// are strictly positive.
type Handle int32

// Size is a terminal size in character cells.
type Size struct {
	Cols uint16
	Rows uint16
}

func (s Size) valid() bool { return s.Cols > 0 && s.Rows > 0 }

func (s Size) winsize() *pty.Winsize {
	return &pty.Winsize{Cols: s.Cols, Rows: s.Rows}
}

// Info is a point-in-time view of a session.
type Info struct {
	Handle    Handle
	ID        string
	Command   string
	Dir       string
	Pid       int
	Size      Size
	StartedAt time.Time
	Exited    bool
	ExitCode  int32 // -1 until the child has exited
}

// Observer is told about session lifecycle events. Callbacks must not
// block; they run on the caller's goroutine or on the exit watcher.
type Observer interface {
	SessionOpened(h Handle, s *Session)
	SessionExited(s *Session)
	SessionClosed(h Handle, s *Session)
}

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
	onExit  func(*Session)
}

// WithLogger sets the logger used by the session and its exit watcher.
func WithLogger(logger *zap.Logger) Option {
	return func(o *openOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics records traffic and exits of the session.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *openOptions) { o.metrics = m }
}

// WithExitHook registers fn to run on the exit watcher once the exit status
// has been published.
func WithExitHook(fn func(*Session)) Option {
	return func(o *openOptions) { o.onExit = fn }
}
