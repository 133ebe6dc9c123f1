// Package journal records session lifecycle events in the storage layer.
// Writes happen on a background goroutine so registry callbacks never
// wait on the database.
package journal

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/monotykamary/openmux-pty/internal/session"
	"github.com/monotykamary/openmux-pty/internal/storage"
)

// ErrStopped is returned by Sync after Close.
var ErrStopped = errors.New("journal stopped")

const (
	queueSize    = 256
	writeTimeout = 5 * time.Second
)

type kind int

const (
	kindOpened kind = iota
	kindExited
	kindClosed
	kindBarrier
)

type event struct {
	kind     kind
	record   *storage.Session
	id       string
	exitCode int32
	at       time.Time
	resultCh chan error // only set for barriers
}

// Service is a session.Observer that persists what it observes.
type Service struct {
	db       *storage.DB
	logger   *zap.Logger
	writeCh  chan *event
	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}
}

var _ session.Observer = (*Service)(nil)

// NewService creates a journal over db and starts its writer.
func NewService(db *storage.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &Service{
		db:      db,
		logger:  logger.Named("journal"),
		writeCh: make(chan *event, queueSize),
		stopCh:  make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.writeWorker()

	return svc
}

func (s *Service) writeWorker() {
	defer s.wg.Done()

	for {
		select {
		case ev := <-s.writeCh:
			s.apply(ev)
		case <-s.stopCh:
			// Drain what was queued before the stop.
			for {
				select {
				case ev := <-s.writeCh:
					s.apply(ev)
				default:
					return
				}
			}
		}
	}
}

func (s *Service) apply(ev *event) {
	if ev.kind == kindBarrier {
		ev.resultCh <- nil
		close(ev.resultCh)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var err error
	switch ev.kind {
	case kindOpened:
		err = s.db.RecordOpened(ctx, ev.record)
	case kindExited:
		err = s.db.RecordExited(ctx, ev.id, ev.exitCode, ev.at)
	case kindClosed:
		err = s.db.RecordClosed(ctx, ev.id, ev.at)
	}
	if err != nil {
		s.logger.Warn("journal write failed", zap.String("session", ev.id), zap.Error(err))
	}
}

func (s *Service) enqueue(ev *event) {
	select {
	case s.writeCh <- ev:
	default:
		s.logger.Warn("journal buffer full, dropping event", zap.String("session", ev.id))
	}
}

// SessionOpened implements session.Observer.
func (s *Service) SessionOpened(h session.Handle, sess *session.Session) {
	info := sess.Info()
	s.enqueue(&event{
		kind: kindOpened,
		id:   info.ID,
		record: &storage.Session{
			ID:        info.ID,
			Handle:    int32(h),
			Command:   info.Command,
			Cwd:       info.Dir,
			Pid:       info.Pid,
			Cols:      info.Size.Cols,
			Rows:      info.Size.Rows,
			StartedAt: info.StartedAt,
		},
	})
}

// SessionExited implements session.Observer.
func (s *Service) SessionExited(sess *session.Session) {
	s.enqueue(&event{kind: kindExited, id: sess.ID, exitCode: sess.ExitCode(), at: time.Now()})
}

// SessionClosed implements session.Observer.
func (s *Service) SessionClosed(_ session.Handle, sess *session.Session) {
	s.enqueue(&event{kind: kindClosed, id: sess.ID, at: time.Now()})
}

// Sync waits until every event queued before the call has been written.
func (s *Service) Sync(ctx context.Context) error {
	ev := &event{kind: kindBarrier, resultCh: make(chan error, 1)}

	select {
	case <-s.stopCh:
		return ErrStopped
	default:
	}

	select {
	case s.writeCh <- ev:
	case <-s.stopCh:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-ev.resultCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Recent returns the most recently started sessions.
func (s *Service) Recent(ctx context.Context, limit int) ([]*storage.Session, error) {
	return s.db.RecentSessions(ctx, limit)
}

// Get returns one session by id.
func (s *Service) Get(ctx context.Context, id string) (*storage.Session, error) {
	return s.db.GetSession(ctx, id)
}

// Close stops the writer after the queued events have been written.
func (s *Service) Close() error {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		s.wg.Wait()
	})
	return nil
}
