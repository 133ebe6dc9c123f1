package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monotykamary/openmux-pty/internal/command"
	"github.com/monotykamary/openmux-pty/internal/session"
	"github.com/monotykamary/openmux-pty/internal/storage"
)

func newJournal(t *testing.T) *Service {
	t.Helper()

	db, err := storage.NewDB(storage.Memory)
	require.NoError(t, err)
	j := NewService(db, nil)
	t.Cleanup(func() {
		j.Close()
		db.Close()
	})
	return j
}

func TestJournalRecordsLifecycle(t *testing.T) {
	j := newJournal(t)
	r := session.NewRegistry(session.Options{Observer: j})
	ctx := context.Background()

	spec, err := command.New(`sh -c "exit 3"`, t.TempDir(), nil)
	require.NoError(t, err)
	h, s, err := r.Open(spec, session.Size{Cols: 100, Rows: 30})
	require.NoError(t, err)

	code, err := s.Wait(ctx)
	require.NoError(t, err)
	require.Equal(t, int32(3), code)

	// The exit event is queued by the watcher right after Done closes.
	require.Eventually(t, func() bool {
		if j.Sync(ctx) != nil {
			return false
		}
		rec, err := j.Get(ctx, s.ID)
		return err == nil && rec.ExitCode != nil
	}, 5*time.Second, 10*time.Millisecond)

	r.Remove(h)
	require.NoError(t, j.Sync(ctx))

	rec, err := j.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(h), rec.Handle)
	assert.Equal(t, s.Pid(), rec.Pid)
	assert.Equal(t, spec.String(), rec.Command)
	assert.Equal(t, spec.Dir, rec.Cwd)
	assert.Equal(t, uint16(100), rec.Cols)
	assert.Equal(t, uint16(30), rec.Rows)
	assert.Equal(t, int32(3), *rec.ExitCode)
	assert.NotNil(t, rec.ExitedAt)
	assert.NotNil(t, rec.ClosedAt)
	assert.False(t, rec.Running())
}

func TestJournalRecent(t *testing.T) {
	j := newJournal(t)
	r := session.NewRegistry(session.Options{Observer: j, KillOnClose: true})
	t.Cleanup(r.CloseAll)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		spec, err := command.New("sleep 30", "", nil)
		require.NoError(t, err)
		_, s, err := r.Open(spec, session.Size{Cols: 80, Rows: 24})
		require.NoError(t, err)
		ids = append(ids, s.ID)
		time.Sleep(5 * time.Millisecond)
	}
	require.NoError(t, j.Sync(ctx))

	recs, err := j.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, ids[2], recs[0].ID)
	assert.Equal(t, ids[0], recs[2].ID)
	for _, rec := range recs {
		assert.True(t, rec.Running())
	}
}

func TestJournalCloseDrainsAndStops(t *testing.T) {
	db, err := storage.NewDB(storage.Memory)
	require.NoError(t, err)
	defer db.Close()
	j := NewService(db, nil)

	r := session.NewRegistry(session.Options{Observer: j, KillOnClose: true})
	spec, err := command.New("sleep 30", "", nil)
	require.NoError(t, err)
	h, s, err := r.Open(spec, session.Size{Cols: 80, Rows: 24})
	require.NoError(t, err)
	r.Remove(h)

	require.NoError(t, j.Close())
	require.NoError(t, j.Close())
	assert.ErrorIs(t, j.Sync(context.Background()), ErrStopped)

	rec, err := db.GetSession(context.Background(), s.ID)
	require.NoError(t, err)
	assert.NotNil(t, rec.ClosedAt)
}
