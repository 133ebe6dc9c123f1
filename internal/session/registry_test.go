package session

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monotykamary/openmux-pty/internal/command"
	"github.com/monotykamary/openmux-pty/internal/metrics"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []string
}

func (o *recordingObserver) add(event string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) SessionOpened(Handle, *Session) { o.add("opened") }
func (o *recordingObserver) SessionExited(*Session)         { o.add("exited") }
func (o *recordingObserver) SessionClosed(Handle, *Session) { o.add("closed") }

func (o *recordingObserver) has(event string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, e := range o.events {
		if e == event {
			return true
		}
	}
	return false
}

func openIn(t *testing.T, r *Registry, line string) (Handle, *Session) {
	t.Helper()

	spec, err := command.New(line, "", nil)
	require.NoError(t, err)
	h, s, err := r.Open(spec, defaultSize)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Kill()
		r.Remove(h)
	})
	return h, s
}

func TestRegistryHandlesAreMonotonic(t *testing.T) {
	r := NewRegistry(Options{})

	var last Handle
	for i := 0; i < 5; i++ {
		h, _ := openIn(t, r, "sleep 30")
		assert.Greater(t, int32(h), int32(last))
		last = h

		// Closing never frees a handle for reuse.
		r.Remove(h)
	}
	assert.Equal(t, 0, r.Len())
}

func TestRegistryLookupAndRemove(t *testing.T) {
	r := NewRegistry(Options{})
	h, s := openIn(t, r, "sleep 30")

	got, ok := r.Lookup(h)
	require.True(t, ok)
	assert.Same(t, s, got)

	got, err := r.Get(h)
	require.NoError(t, err)
	assert.Same(t, s, got)

	assert.True(t, r.Remove(h))
	assert.False(t, r.Remove(h), "second close is a no-op")

	_, ok = r.Lookup(h)
	assert.False(t, ok)
	_, err = r.Get(h)
	assert.ErrorIs(t, err, ErrNotFound)

	_, ok = r.Lookup(h + 1000)
	assert.False(t, ok)
}

func TestRegistryRemoveWithoutKillLeavesChildRunning(t *testing.T) {
	r := NewRegistry(Options{})
	h, s := openIn(t, r, "sleep 30")

	r.Remove(h)
	time.Sleep(50 * time.Millisecond)
	assert.False(t, s.Exited())

	require.NoError(t, s.Kill())
	assert.Equal(t, int32(137), waitExit(t, s))
}

func TestRegistryKillOnClose(t *testing.T) {
	r := NewRegistry(Options{KillOnClose: true})
	h, s := openIn(t, r, "sleep 30")

	r.Remove(h)
	assert.Equal(t, int32(137), waitExit(t, s))
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry(Options{})
	h1, _ := openIn(t, r, "sleep 30")
	h2, s2 := openIn(t, r, `sh -c "exit 4"`)
	waitExit(t, s2)

	infos := r.List()
	require.Len(t, infos, 2)
	assert.Equal(t, h1, infos[0].Handle)
	assert.False(t, infos[0].Exited)
	assert.Equal(t, h2, infos[1].Handle)
	assert.True(t, infos[1].Exited)
	assert.Equal(t, int32(4), infos[1].ExitCode)
}

func TestRegistryObserverAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	obs := &recordingObserver{}
	r := NewRegistry(Options{Metrics: m, Observer: obs})

	h, s := openIn(t, r, `sh -c "exit 0"`)
	waitExit(t, s)
	require.Eventually(t, func() bool { return obs.has("exited") }, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsActive))
	r.Remove(h)

	assert.True(t, obs.has("opened"))
	assert.True(t, obs.has("closed"))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.SessionsActive))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsOpened))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionExits.WithLabelValues("0")))
}

func TestRegistryOpenFailureIssuesNoHandle(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	r := NewRegistry(Options{Metrics: m})

	_, _, err := r.Open(&command.Spec{Program: "/nonexistent/ptyhost-test"}, defaultSize)
	assert.ErrorIs(t, err, ErrSpawn)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SpawnFailures.WithLabelValues("start")))

	h, _ := openIn(t, r, "sleep 30")
	assert.Equal(t, Handle(1), h)
}

func TestRegistryHandlesExhausted(t *testing.T) {
	r := NewRegistry(Options{})
	r.last = math.MaxInt32 - 1

	h, err := r.Insert(&Session{})
	require.NoError(t, err)
	assert.Equal(t, Handle(math.MaxInt32), h)

	_, err = r.Insert(&Session{})
	assert.ErrorIs(t, err, ErrHandlesExhausted)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryCloseAll(t *testing.T) {
	r := NewRegistry(Options{})
	_, s1 := openIn(t, r, "sleep 30")
	_, s2 := openIn(t, r, "cat")

	r.CloseAll()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, int32(137), waitExit(t, s1))
	assert.Equal(t, int32(137), waitExit(t, s2))
}
