package boundary

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monotykamary/openmux-pty/internal/command"
	"github.com/monotykamary/openmux-pty/internal/session"
)

func newAdapter(t *testing.T) *Adapter {
	t.Helper()

	a := New(session.NewRegistry(session.Options{KillOnClose: true}), nil)
	t.Cleanup(a.Registry().CloseAll)
	return a
}

func spawn(t *testing.T, a *Adapter, line string) int32 {
	t.Helper()

	h := a.Spawn(line, "", nil, 80, 24)
	require.Greater(t, h, int32(0), "spawn of %q failed", line)
	return h
}

// collect reads from h until the output contains want or the child exits.
func collect(t *testing.T, a *Adapter, h int32, want string) string {
	t.Helper()

	var out strings.Builder
	buf := make([]byte, 256)
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		n := a.Read(h, buf)
		switch {
		case n > 0:
			out.Write(buf[:n])
			if strings.Contains(out.String(), want) {
				return out.String()
			}
		case n == NoData:
			time.Sleep(10 * time.Millisecond)
		case n == ChildExited:
			t.Fatalf("child exited before %q appeared; got %q", want, out.String())
		default:
			t.Fatalf("read failed with %d", n)
		}
	}
	t.Fatalf("did not see %q in %q", want, out.String())
	return ""
}

func TestSpawnHandlesIncrease(t *testing.T) {
	a := newAdapter(t)

	var last int32
	for i := 0; i < 4; i++ {
		h := spawn(t, a, "sleep 30")
		assert.Greater(t, h, last)
		last = h
		a.Close(h)
	}
}

func TestSpawnRejectsBadInput(t *testing.T) {
	a := newAdapter(t)

	tests := []struct {
		name       string
		line       string
		cols, rows int32
	}{
		{name: "empty command", line: "", cols: 80, rows: 24},
		{name: "unbalanced quotes", line: `sh -c "echo`, cols: 80, rows: 24},
		{name: "missing executable", line: "/nonexistent/ptyhost-test", cols: 80, rows: 24},
		{name: "zero cols", line: "true", cols: 0, rows: 24},
		{name: "negative rows", line: "true", cols: 80, rows: -1},
		{name: "cols overflow", line: "true", cols: 70000, rows: 24},
	}

	checkFDs := runtime.GOOS == "linux"
	if checkFDs {
		// Let the runtime set up its poller before the first snapshot.
		h := spawn(t, a, `sh -c "exit 0"`)
		require.Eventually(t, func() bool { return a.ExitCode(h) == 0 }, 5*time.Second, 10*time.Millisecond)
		a.Close(h)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before map[string]bool
			if checkFDs {
				before = openFDs(t)
			}

			assert.Equal(t, Error, a.Spawn(tt.line, "", nil, tt.cols, tt.rows))

			if checkFDs {
				for fd := range openFDs(t) {
					assert.True(t, before[fd], "descriptor %s leaked", fd)
				}
			}
		})
	}
	assert.Equal(t, 0, a.Registry().Len())
}

func openFDs(t *testing.T) map[string]bool {
	t.Helper()

	entries, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	fds := make(map[string]bool, len(entries))
	for _, e := range entries {
		fds[e.Name()] = true
	}
	return fds
}

func TestReadAfterResize(t *testing.T) {
	a := newAdapter(t)
	h := spawn(t, a, "sleep 30")

	require.Equal(t, Success, a.Resize(h, 100, 40))

	got := make(chan int32, 1)
	go func() { got <- a.Read(h, make([]byte, 64)) }()
	select {
	case n := <-got:
		assert.Equal(t, NoData, n)
	case <-time.After(2 * time.Second):
		a.Kill(h)
		t.Fatal("read blocked after resize")
	}
}

func TestReadSilentChild(t *testing.T) {
	a := newAdapter(t)
	h := spawn(t, a, "sleep 30")

	buf := make([]byte, 64)
	start := time.Now()
	assert.Equal(t, NoData, a.Read(h, buf))
	assert.Less(t, time.Since(start), time.Second)

	assert.Greater(t, a.Pid(h), int32(0))
	assert.Equal(t, int32(-1), a.ExitCode(h))
}

func TestWriteEchoes(t *testing.T) {
	a := newAdapter(t)
	h := spawn(t, a, "cat")

	payload := []byte("ping from bun\n")
	assert.Equal(t, int32(len(payload)), a.Write(h, payload))
	collect(t, a, h, "ping from bun")
}

func TestExitIsReported(t *testing.T) {
	a := newAdapter(t)
	h := spawn(t, a, `sh -c "exit 5"`)

	require.Eventually(t, func() bool { return a.ExitCode(h) == 5 }, 5*time.Second, 10*time.Millisecond)

	buf := make([]byte, 64)
	require.Eventually(t, func() bool { return a.Read(h, buf) == ChildExited }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, ChildExited, a.Read(h, buf))
	assert.Equal(t, ChildExited, a.Write(h, []byte("x")))
}

func TestKillReportsSignalExit(t *testing.T) {
	a := newAdapter(t)
	h := spawn(t, a, "sleep 30")

	assert.Equal(t, Success, a.Kill(h))
	require.Eventually(t, func() bool { return a.ExitCode(h) == 137 }, 5*time.Second, 10*time.Millisecond)
}

func TestResize(t *testing.T) {
	a := newAdapter(t)
	h := spawn(t, a, `sh -c "read x; stty size"`)

	assert.Equal(t, Success, a.Resize(h, 120, 50))
	assert.Equal(t, Error, a.Resize(h, 0, 50))
	assert.Equal(t, Error, a.Resize(h, 120, 70000))

	a.Write(h, []byte("\n"))
	collect(t, a, h, "50 120")
}

func TestEnvironmentAndDirectory(t *testing.T) {
	a := newAdapter(t)
	dir := t.TempDir()
	env := command.FormatEnvBlock(map[string]string{"PTYHOST_MARK": "env-ok"})

	h := a.Spawn(`sh -c 'printf "%s:%s\n" "$PTYHOST_MARK" "$(basename "$PWD")"'`, dir, env, 80, 24)
	require.Greater(t, h, int32(0))

	collect(t, a, h, "env-ok:"+filepath.Base(dir))
}

func TestCloseInvalidatesHandle(t *testing.T) {
	a := newAdapter(t)
	h := spawn(t, a, "sleep 30")

	a.Close(h)
	a.Close(h)

	buf := make([]byte, 16)
	assert.Equal(t, Error, a.Read(h, buf))
	assert.Equal(t, Error, a.Write(h, []byte("x")))
	assert.Equal(t, Error, a.Resize(h, 80, 24))
	assert.Equal(t, Error, a.Kill(h))
	assert.Equal(t, Error, a.Pid(h))
	assert.Equal(t, Error, a.ExitCode(h))

	next := spawn(t, a, "sleep 30")
	assert.NotEqual(t, h, next)
}

func TestInvalidArguments(t *testing.T) {
	a := newAdapter(t)
	h := spawn(t, a, "sleep 30")

	for _, bad := range []int32{0, -1, h + 100} {
		assert.Equal(t, Error, a.Read(bad, make([]byte, 8)))
		assert.Equal(t, Error, a.Write(bad, []byte("x")))
		assert.Equal(t, Error, a.Kill(bad))
		assert.Equal(t, Error, a.Pid(bad))
		assert.Equal(t, Error, a.ExitCode(bad))
		assert.NotPanics(t, func() { a.Close(bad) })
	}

	assert.Equal(t, Error, a.Read(h, nil))
	assert.Equal(t, Error, a.Write(h, nil))
}

func TestDefaultIsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.NotNil(t, Default().Registry())
}
