// Package boundary translates between primitive values crossing the C ABI
// and typed session operations. Every failure collapses to a sentinel;
// details only reach the debug log.
package boundary

import (
	"errors"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/monotykamary/openmux-pty/internal/command"
	"github.com/monotykamary/openmux-pty/internal/config"
	"github.com/monotykamary/openmux-pty/internal/logging"
	"github.com/monotykamary/openmux-pty/internal/session"
)

// Sentinel results. Read returns 0 for "no data yet", which is distinct
// from ChildExited ("stop reading").
const (
	Success     int32 = 0
	Error       int32 = -1
	ChildExited int32 = -2
	NoData      int32 = 0
)

// Adapter exposes a Registry through primitive-typed entry points.
type Adapter struct {
	registry *session.Registry
	logger   *zap.Logger
}

// New returns an Adapter over registry.
func New(registry *session.Registry, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{registry: registry, logger: logger}
}

// Default returns the process-wide Adapter. It is built on first use from
// the PTYHOST_* environment and lives until the process exits.
var Default = sync.OnceValue(func() *Adapter {
	cfg := config.LoadOrDefault()
	logger := logging.ForLibrary(cfg.Debug)
	registry := session.NewRegistry(session.Options{
		Logger:      logger,
		KillOnClose: cfg.KillOnClose,
	})
	return New(registry, logger)
})

// Registry returns the underlying registry.
func (a *Adapter) Registry() *session.Registry { return a.registry }

// Spawn parses commandLine, starts it on a new terminal of cols x rows and
// returns its handle. An empty cwd inherits the caller's directory.
func (a *Adapter) Spawn(commandLine, cwd string, envBlock []byte, cols, rows int32) int32 {
	size, ok := toSize(cols, rows)
	if !ok {
		a.logger.Debug("spawn rejected: bad size", zap.Int32("cols", cols), zap.Int32("rows", rows))
		return Error
	}

	spec, err := command.New(commandLine, cwd, command.ParseEnvBlock(envBlock))
	if err != nil {
		a.logger.Debug("spawn rejected", zap.String("command", commandLine), zap.Error(err))
		return Error
	}

	h, _, err := a.registry.Open(spec, size)
	if err != nil {
		a.logger.Debug("spawn error", zap.String("command", commandLine), zap.Error(err))
		return Error
	}
	return int32(h)
}

// Write sends data to the terminal and returns len(data).
func (a *Adapter) Write(handle int32, data []byte) int32 {
	if len(data) == 0 || len(data) > math.MaxInt32 {
		return Error
	}
	s, ok := a.lookup(handle)
	if !ok {
		return Error
	}
	if err := s.Write(data); err != nil {
		return a.code(err)
	}
	return int32(len(data))
}

// Read drains available output into buf. It returns the byte count,
// NoData, ChildExited or Error.
func (a *Adapter) Read(handle int32, buf []byte) int32 {
	if len(buf) == 0 {
		return Error
	}
	if len(buf) > math.MaxInt32 {
		buf = buf[:math.MaxInt32]
	}
	s, ok := a.lookup(handle)
	if !ok {
		return Error
	}
	n, err := s.ReadAvailable(buf)
	if err != nil {
		return a.code(err)
	}
	return int32(n)
}

// Resize applies new terminal dimensions.
func (a *Adapter) Resize(handle, cols, rows int32) int32 {
	size, ok := toSize(cols, rows)
	if !ok {
		return Error
	}
	s, ok := a.lookup(handle)
	if !ok {
		return Error
	}
	if err := s.Resize(size); err != nil {
		return a.code(err)
	}
	return Success
}

// Kill terminates the child.
func (a *Adapter) Kill(handle int32) int32 {
	s, ok := a.lookup(handle)
	if !ok {
		return Error
	}
	if err := s.Kill(); err != nil {
		return a.code(err)
	}
	return Success
}

// Pid returns the child's process id.
func (a *Adapter) Pid(handle int32) int32 {
	s, ok := a.lookup(handle)
	if !ok {
		return Error
	}
	return int32(s.Pid())
}

// ExitCode returns the child's exit code, -1 while it is still running. A
// child killed by a signal reports 128 plus the signal number, as a shell
// would (137 after SIGKILL).
func (a *Adapter) ExitCode(handle int32) int32 {
	s, ok := a.lookup(handle)
	if !ok {
		return Error
	}
	return s.ExitCode()
}

// Close releases handle. Closing an unknown or already closed handle is a
// silent no-op.
func (a *Adapter) Close(handle int32) {
	if handle <= 0 {
		return
	}
	a.registry.Remove(session.Handle(handle))
}

func (a *Adapter) lookup(handle int32) (*session.Session, bool) {
	if handle <= 0 {
		return nil, false
	}
	return a.registry.Lookup(session.Handle(handle))
}

func (a *Adapter) code(err error) int32 {
	if errors.Is(err, session.ErrChildExited) {
		return ChildExited
	}
	a.logger.Debug("operation failed", zap.Error(err))
	return Error
}

func toSize(cols, rows int32) (session.Size, bool) {
	if cols <= 0 || rows <= 0 || cols > math.MaxUint16 || rows > math.MaxUint16 {
		return session.Size{}, false
	}
	return session.Size{Cols: uint16(cols), Rows: uint16(rows)}, true
}
