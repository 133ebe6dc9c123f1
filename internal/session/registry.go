package session

import (
	"math"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/monotykamary/openmux-pty/internal/command"
	"github.com/monotykamary/openmux-pty/internal/metrics"
)

// Options configures a Registry.
type Options struct {
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Observer Observer

	// KillOnClose kills a still-running child when its handle is removed.
	// Without it the child keeps running and its descriptors stay open
	// until it exits on its own.
	KillOnClose bool
}

// Registry maps handles to sessions. Handles are issued from a monotonic
// counter and never reused. The lock only guards the map; no I/O happens
// while it is held.
type Registry struct {
	mu       sync.Mutex
	sessions map[Handle]*Session
	last     Handle

	logger      *zap.Logger
	metrics     *metrics.Metrics
	observer    Observer
	killOnClose bool
}

// NewRegistry creates an empty registry.
func NewRegistry(opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	observer := opts.Observer
	if observer == nil {
		observer = nopObserver{}
	}

	return &Registry{
		sessions:    make(map[Handle]*Session),
		logger:      logger,
		metrics:     opts.Metrics,
		observer:    observer,
		killOnClose: opts.KillOnClose,
	}
}

// Open spawns a session and registers it.
func (r *Registry) Open(spec *command.Spec, size Size) (Handle, *Session, error) {
	s, err := Open(spec, size,
		WithLogger(r.logger),
		WithMetrics(r.metrics),
		WithExitHook(r.observer.SessionExited),
	)
	if err != nil {
		return 0, nil, err
	}

	h, err := r.Insert(s)
	if err != nil {
		_ = s.Kill()
		s.Close()
		return 0, nil, err
	}
	return h, s, nil
}

// Insert registers s under a fresh handle.
func (r *Registry) Insert(s *Session) (Handle, error) {
	r.mu.Lock()
	if r.last == math.MaxInt32 {
		r.mu.Unlock()
		return 0, ErrHandlesExhausted
	}
	r.last++
	h := r.last
	r.sessions[h] = s
	r.mu.Unlock()

	r.metrics.SessionOpened()
	r.observer.SessionOpened(h, s)
	r.logger.Debug("session registered", zap.Int32("handle", int32(h)), zap.String("session", s.ID))
	return h, nil
}

// Lookup returns the session for h.
func (r *Registry) Lookup(h Handle) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[h]
	return s, ok
}

// Get is Lookup returning ErrNotFound for a miss.
func (r *Registry) Get(h Handle) (*Session, error) {
	s, ok := r.Lookup(h)
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Remove drops the registry's reference to h. It reports whether h was
// registered; removing an unknown handle is a no-op.
func (r *Registry) Remove(h Handle) bool {
	r.mu.Lock()
	s, ok := r.sessions[h]
	if ok {
		delete(r.sessions, h)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	r.release(h, s, r.killOnClose)
	return true
}

func (r *Registry) release(h Handle, s *Session, kill bool) {
	if kill && !s.Exited() {
		if err := s.Kill(); err != nil {
			r.logger.Debug("kill on close failed", zap.Int32("handle", int32(h)), zap.Error(err))
		}
	}
	s.Close()

	r.metrics.SessionRemoved()
	r.observer.SessionClosed(h, s)
	r.logger.Debug("session removed", zap.Int32("handle", int32(h)), zap.String("session", s.ID))
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// List returns a snapshot of all registered sessions ordered by handle.
func (r *Registry) List() []Info {
	r.mu.Lock()
	infos := make([]Info, 0, len(r.sessions))
	sessions := make([]*Session, 0, len(r.sessions))
	handles := make([]Handle, 0, len(r.sessions))
	for h, s := range r.sessions {
		handles = append(handles, h)
		sessions = append(sessions, s)
	}
	r.mu.Unlock()

	for i, s := range sessions {
		info := s.Info()
		info.Handle = handles[i]
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Handle < infos[j].Handle })
	return infos
}

// CloseAll removes every session and kills children that are still
// running. It is meant for process teardown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[Handle]*Session)
	r.mu.Unlock()

	for h, s := range sessions {
		r.release(h, s, true)
	}
}

type nopObserver struct{}

func (nopObserver) SessionOpened(Handle, *Session) {}
func (nopObserver) SessionExited(*Session)         {}
func (nopObserver) SessionClosed(Handle, *Session) {}
