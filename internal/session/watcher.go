package session

import (
	"os"
	"syscall"

	"go.uber.org/zap"
)

func (s *Session) startWatcher() {
	s.watchOnce.Do(func() {
		go s.watch()
	})
}

// watch blocks until the child terminates and publishes its exit status.
// The code is stored before the exited flag so that anyone observing
// exited also observes the code. A failed wait still marks the session
// exited.
func (s *Session) watch() {
	err := s.cmd.Wait()

	if state := s.cmd.ProcessState; state != nil {
		s.exitCode.Store(exitStatus(state))
	} else {
		s.logger.Debug("wait failed", zap.Error(err))
	}
	s.exited.Store(true)
	close(s.done)

	code := s.exitCode.Load()
	s.metrics.SessionExited(code)
	s.logger.Debug("child exited", zap.Int32("code", code))

	if s.onExit != nil {
		s.onExit(s)
	}
	s.release()
}

func exitStatus(state *os.ProcessState) int32 {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int32(ws.Signal())
	}
	return int32(state.ExitCode())
}
