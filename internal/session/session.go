package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/creack/pty"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/monotykamary/openmux-pty/internal/command"
	"github.com/monotykamary/openmux-pty/internal/metrics"
)

// Session owns one PTY pair and the child attached to it.
//
// The master file is the write end and the resize target. Reads go through
// a duplicate of the master descriptor in non-blocking mode, owned by the
// session alone. Exit state is published by the exit watcher: exitCode is
// always stored before exited is set.
type Session struct {
	ID        string
	Command   string
	Dir       string
	StartedAt time.Time

	cmd  *exec.Cmd
	pid  int
	ptmx *os.File

	writeMu sync.Mutex
	killMu  sync.Mutex

	fdMu   sync.RWMutex
	readFD int // -1 once closed

	sizeMu sync.Mutex
	size   Size

	exited   atomic.Bool
	exitCode atomic.Int32
	done     chan struct{}

	// refs counts the owner (registry or direct caller) and the exit
	// watcher. Descriptors are closed when both have let go.
	refs      atomic.Int32
	ownerOnce sync.Once
	closeOnce sync.Once
	watchOnce sync.Once

	logger  *zap.Logger
	metrics *metrics.Metrics
	onExit  func(*Session)
}

// Open allocates a PTY, spawns the child described by spec on it and
// starts the exit watcher. On error nothing is left behind: descriptors are
// closed and a spawned child is killed and reaped.
func Open(spec *command.Spec, size Size, opts ...Option) (*Session, error) {
	o := openOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	fail := func(stage string, err error) error {
		o.metrics.SpawnFailed(stage)
		o.logger.Debug("spawn failed", zap.String("stage", stage), zap.Error(err))
		return &SpawnError{Stage: stage, Err: err}
	}

	if !size.valid() {
		return nil, fail("size", ErrInvalidSize)
	}

	cmd, err := spec.Build()
	if err != nil {
		return nil, fail("build", err)
	}

	ptmx, err := pty.StartWithSize(cmd, size.winsize())
	if err != nil {
		return nil, fail("start", err)
	}

	readFD, err := dupFile(ptmx)
	if err != nil {
		abandon(cmd, ptmx)
		return nil, fail("dup", err)
	}
	if err := unix.SetNonblock(readFD, true); err != nil {
		_ = unix.Close(readFD)
		abandon(cmd, ptmx)
		return nil, fail("nonblock", err)
	}

	s := &Session{
		ID:        uuid.NewString(),
		Command:   spec.String(),
		Dir:       spec.Dir,
		StartedAt: time.Now(),
		cmd:       cmd,
		pid:       -1,
		ptmx:      ptmx,
		readFD:    readFD,
		size:      size,
		done:      make(chan struct{}),
		metrics:   o.metrics,
		onExit:    o.onExit,
	}
	if cmd.Process != nil {
		s.pid = cmd.Process.Pid
	}
	s.exitCode.Store(-1)
	s.refs.Store(2)
	s.logger = o.logger.With(zap.String("session", s.ID), zap.Int("pid", s.pid))

	s.startWatcher()

	s.logger.Debug("session opened",
		zap.String("command", s.Command),
		zap.Int("fd", readFD),
		zap.Uint16("cols", size.Cols),
		zap.Uint16("rows", size.Rows),
	)
	return s, nil
}

// dupFile duplicates the descriptor behind f. The duplicate shares f's open
// file description, so O_NONBLOCK set on it applies to f as well. Nothing
// may call (*os.File).Fd on the master afterwards: Fd switches the shared
// description back to blocking mode.
func dupFile(f *os.File) (int, error) {
	rc, err := f.SyscallConn()
	if err != nil {
		return -1, err
	}

	fd := -1
	var dupErr error
	if err := rc.Control(func(raw uintptr) {
		fd, dupErr = unix.FcntlInt(raw, unix.F_DUPFD_CLOEXEC, 0)
	}); err != nil {
		return -1, err
	}
	if dupErr != nil {
		return -1, fmt.Errorf("dup master: %w", dupErr)
	}
	return fd, nil
}

// abandon undoes a half-finished spawn.
func abandon(cmd *exec.Cmd, ptmx *os.File) {
	if cmd.Process != nil {
		_ = cmd.Process.Kill()
		go func() { _ = cmd.Wait() }()
	}
	_ = ptmx.Close()
}

// ReadAvailable drains whatever the terminal has buffered into buf without
// blocking.
//
// It returns (n, nil) with n > 0 when data was read, (0, nil) when nothing
// is available yet, ErrChildExited once the child has terminated and no
// more data was found, and an *IOError for a failure with nothing read.
// Once the child is known to have exited the descriptor is not touched.
func (s *Session) ReadAvailable(buf []byte) (int, error) {
	if s.exited.Load() {
		return 0, ErrChildExited
	}
	if len(buf) == 0 {
		return 0, nil
	}

	n, err := s.drain(buf)
	if n > 0 || err != nil {
		return n, err
	}
	if s.exited.Load() {
		return 0, ErrChildExited
	}
	return 0, nil
}

// ReadRemaining is ReadAvailable without the exit check. Streaming
// readers use it after ErrChildExited to collect output the child wrote
// just before it terminated; (0, nil) means nothing is left.
func (s *Session) ReadRemaining(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	return s.drain(buf)
}

func (s *Session) drain(buf []byte) (int, error) {
	s.fdMu.RLock()
	defer s.fdMu.RUnlock()

	if s.readFD < 0 {
		return 0, ErrClosed
	}

	total := 0
	var readErr error

loop:
	for total < len(buf) {
		n, err := unix.Read(s.readFD, buf[total:])
		switch {
		case err == nil && n > 0:
			total += n
		case err == nil:
			break loop // end of stream
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.EAGAIN):
			break loop
		case errors.Is(err, unix.EIO):
			// Linux reports EIO on the master once the subordinate side is gone.
			break loop
		default:
			readErr = err
			break loop
		}
	}

	if total > 0 {
		if readErr != nil {
			s.logger.Debug("read error after partial data", zap.Int("bytes", total), zap.Error(readErr))
		}
		s.metrics.Read(total)
		return total, nil
	}
	if readErr != nil {
		s.metrics.IOError("read")
		s.logger.Debug("read error", zap.Error(readErr))
		return 0, &IOError{Op: "read", Err: readErr}
	}
	return 0, nil
}

// Write sends all of p to the terminal or fails. Concurrent writes never
// interleave.
func (s *Session) Write(p []byte) error {
	if s.exited.Load() {
		return ErrChildExited
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// The master has no user-space buffer, so a completed write is flushed.
	if _, err := s.ptmx.Write(p); err != nil {
		s.metrics.IOError("write")
		s.logger.Debug("write error", zap.Error(err))
		return &IOError{Op: "write", Err: err}
	}
	s.metrics.Written(len(p))
	return nil
}

// Resize applies new terminal dimensions.
func (s *Session) Resize(size Size) error {
	if !size.valid() {
		return ErrInvalidSize
	}

	if err := setWinsize(s.ptmx, size); err != nil {
		s.metrics.IOError("resize")
		s.logger.Debug("resize error", zap.Error(err))
		return &IOError{Op: "resize", Err: err}
	}

	s.sizeMu.Lock()
	s.size = size
	s.sizeMu.Unlock()
	return nil
}

// setWinsize issues TIOCSWINSZ on the master. The descriptor is borrowed
// through SyscallConn, which keeps it open for the duration of the call
// and leaves the blocking mode alone.
func setWinsize(f *os.File, size Size) error {
	rc, err := f.SyscallConn()
	if err != nil {
		return err
	}
	ws := &unix.Winsize{Row: size.Rows, Col: size.Cols}
	var ioctlErr error
	if err := rc.Control(func(fd uintptr) {
		ioctlErr = unix.IoctlSetWinsize(int(fd), unix.TIOCSWINSZ, ws)
	}); err != nil {
		return err
	}
	return ioctlErr
}

// Kill terminates the child with SIGKILL. Exit state is left to the exit
// watcher.
func (s *Session) Kill() error {
	s.killMu.Lock()
	defer s.killMu.Unlock()

	if err := s.cmd.Process.Kill(); err != nil {
		s.metrics.IOError("kill")
		s.logger.Debug("kill error", zap.Error(err))
		return &IOError{Op: "kill", Err: err}
	}
	return nil
}

// Signal delivers sig to the child.
func (s *Session) Signal(sig os.Signal) error {
	s.killMu.Lock()
	defer s.killMu.Unlock()

	if err := s.cmd.Process.Signal(sig); err != nil {
		s.metrics.IOError("signal")
		return &IOError{Op: "signal", Err: err}
	}
	return nil
}

// Pid returns the child's process id, or -1 if it is unknown.
func (s *Session) Pid() int { return s.pid }

// Exited reports whether the child has terminated.
func (s *Session) Exited() bool { return s.exited.Load() }

// ExitCode returns the child's exit code, or -1 while it is running.
// Death by signal is reported as 128 plus the signal number.
func (s *Session) ExitCode() int32 { return s.exitCode.Load() }

// Done is closed once the exit status has been published.
func (s *Session) Done() <-chan struct{} { return s.done }

// Wait blocks until the child exits or ctx is done.
func (s *Session) Wait(ctx context.Context) (int32, error) {
	select {
	case <-s.done:
		return s.ExitCode(), nil
	case <-ctx.Done():
		return -1, ctx.Err()
	}
}

// Size returns the last size applied to the terminal.
func (s *Session) Size() Size {
	s.sizeMu.Lock()
	defer s.sizeMu.Unlock()
	return s.size
}

// Info returns a snapshot of the session.
func (s *Session) Info() Info {
	exited := s.exited.Load()
	return Info{
		ID:        s.ID,
		Command:   s.Command,
		Dir:       s.Dir,
		Pid:       s.pid,
		Size:      s.Size(),
		StartedAt: s.StartedAt,
		Exited:    exited,
		ExitCode:  s.ExitCode(),
	}
}

// Close gives up the caller's reference. The descriptors are closed as soon
// as the child has also been reaped. Close is idempotent and does not kill
// the child.
func (s *Session) Close() {
	s.ownerOnce.Do(s.release)
}

func (s *Session) release() {
	if s.refs.Add(-1) == 0 {
		s.closeFDs()
	}
}

func (s *Session) closeFDs() {
	s.closeOnce.Do(func() {
		s.fdMu.Lock()
		if s.readFD >= 0 {
			_ = unix.Close(s.readFD)
			s.readFD = -1
		}
		s.fdMu.Unlock()

		_ = s.ptmx.Close()
		s.logger.Debug("session descriptors closed")
	})
}
