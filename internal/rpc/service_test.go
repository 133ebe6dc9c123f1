package rpc

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/monotykamary/openmux-pty/gen/proto"
	"github.com/monotykamary/openmux-pty/internal/journal"
	"github.com/monotykamary/openmux-pty/internal/session"
	"github.com/monotykamary/openmux-pty/internal/storage"
)

type fixture struct {
	client   *Client
	registry *session.Registry
	journal  *journal.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := storage.NewDB(storage.Memory)
	require.NoError(t, err)
	j := journal.NewService(db, nil)
	registry := session.NewRegistry(session.Options{KillOnClose: true, Observer: j})

	srv := grpc.NewServer()
	pb.RegisterPtyServiceServer(srv, NewPtyService(registry, PtyOptions{Poll: 5 * time.Millisecond}))
	pb.RegisterSystemServiceServer(srv, NewSystemService("1.2.3", "abc123", nil))
	pb.RegisterJournalServiceServer(srv, NewJournalService(j))

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		srv.Stop()
		registry.CloseAll()
		j.Close()
		db.Close()
	})
	return &fixture{client: NewClient(conn), registry: registry, journal: j}
}

func (f *fixture) spawn(t *testing.T, line string) *pb.SpawnResponse {
	t.Helper()

	resp, err := f.client.Spawn(context.Background(), &pb.SpawnRequest{Command: line})
	require.NoError(t, err)
	require.Greater(t, resp.Handle, int32(0))
	return resp
}

func requireCode(t *testing.T, err error, want codes.Code) *status.Status {
	t.Helper()

	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "not a status error: %v", err)
	require.Equal(t, want, st.Code(), st.Message())
	return st
}

func badFields(st *status.Status) []string {
	var fields []string
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, v := range br.GetFieldViolations() {
				fields = append(fields, v.GetField())
			}
		}
	}
	return fields
}

func TestPingAndVersion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	msg, err := f.client.Ping(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "pong", msg)

	msg, err = f.client.Ping(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", msg)

	v, err := f.client.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v.Version)
	assert.Equal(t, "abc123", v.Build)
}

func TestStreamOutputUntilExit(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp := f.spawn(t, `sh -c "sleep 0.2; printf streamed-output; exit 7"`)
	stream, err := f.client.StreamOutput(ctx, resp.Handle)
	require.NoError(t, err)

	var out strings.Builder
	var last *pb.OutputChunk
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		out.Write(chunk.Data)
		last = chunk
	}

	assert.Contains(t, out.String(), "streamed-output")
	require.NotNil(t, last)
	assert.True(t, last.Exited)
	assert.Equal(t, int32(7), last.ExitCode)
}

func TestStreamEndsOnCancelAfterResize(t *testing.T) {
	f := newFixture(t)
	resp := f.spawn(t, "sleep 30")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream, err := f.client.StreamOutput(ctx, resp.Handle)
	require.NoError(t, err)

	require.NoError(t, f.client.Resize(context.Background(), resp.Handle, 100, 40))
	time.Sleep(50 * time.Millisecond)
	cancel()

	done := make(chan error, 1)
	go func() {
		for {
			if _, err := stream.Recv(); err != nil {
				done <- err
				return
			}
		}
	}()
	select {
	case err := <-done:
		assert.Equal(t, codes.Canceled, status.Code(err))
	case <-time.After(3 * time.Second):
		t.Fatal("stream did not end after cancel")
	}

	readCtx, readCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer readCancel()
	r, err := f.client.Read(readCtx, resp.Handle, 0)
	require.NoError(t, err, "read must not block after a resize")
	assert.Empty(t, r.Data)
	assert.False(t, r.Exited)
}

func TestSpawnPassesEnv(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := f.client.Spawn(ctx, &pb.SpawnRequest{
		Command: `sh -c 'printf "%s" "$PTYHOST_GREETING"'`,
		Env:     []string{"PTYHOST_GREETING=hello-from-env", "malformed"},
	})
	require.NoError(t, err)

	stream, err := f.client.StreamOutput(ctx, resp.Handle)
	require.NoError(t, err)

	var out strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		out.Write(chunk.Data)
	}
	assert.Contains(t, out.String(), "hello-from-env")
}

func TestWriteAndRead(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp := f.spawn(t, "cat")

	w, err := f.client.Write(ctx, resp.Handle, []byte("over the wire\n"))
	require.NoError(t, err)
	assert.Equal(t, int32(len("over the wire\n")), w.Written)

	var out strings.Builder
	assert.Eventually(t, func() bool {
		r, err := f.client.Read(ctx, resp.Handle, 0)
		if err != nil {
			return false
		}
		out.Write(r.Data)
		return strings.Contains(out.String(), "over the wire")
	}, 5*time.Second, 10*time.Millisecond)
}

func TestExitedSessionReadAndWrite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp := f.spawn(t, `sh -c "exit 2"`)

	require.Eventually(t, func() bool {
		st, err := f.client.Status(ctx, resp.Handle)
		return err == nil && st.Exited
	}, 5*time.Second, 10*time.Millisecond)

	r, err := f.client.Read(ctx, resp.Handle, 16)
	require.NoError(t, err)
	assert.True(t, r.Exited)
	assert.Empty(t, r.Data)

	_, err = f.client.Write(ctx, resp.Handle, []byte("x"))
	requireCode(t, err, codes.FailedPrecondition)

	st, err := f.client.Status(ctx, resp.Handle)
	require.NoError(t, err)
	assert.Equal(t, int32(2), st.ExitCode)
}

func TestSpawnValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		req    *pb.SpawnRequest
		code   codes.Code
		fields []string
	}{
		{name: "blank command", req: &pb.SpawnRequest{Command: "   "}, code: codes.InvalidArgument, fields: []string{"command"}},
		{name: "unbalanced quotes", req: &pb.SpawnRequest{Command: `sh -c "echo`}, code: codes.InvalidArgument, fields: []string{"command"}},
		{name: "too wide", req: &pb.SpawnRequest{Command: "true", Cols: 70000, Rows: 70000}, code: codes.InvalidArgument, fields: []string{"cols", "rows"}},
		{name: "missing executable", req: &pb.SpawnRequest{Command: "/nonexistent/ptyhost-test"}, code: codes.FailedPrecondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.client.Spawn(ctx, tt.req)
			st := requireCode(t, err, tt.code)
			if tt.fields != nil {
				assert.Equal(t, tt.fields, badFields(st))
			}
		})
	}
	assert.Equal(t, 0, f.registry.Len())
}

func TestSpawnWithoutCommandStartsShell(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SHELL", "/bin/sh")
	t.Setenv("HOME", home)
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.client.Spawn(ctx, &pb.SpawnRequest{})
	require.NoError(t, err)

	st, err := f.client.Status(ctx, resp.Handle)
	require.NoError(t, err)
	assert.Equal(t, "/bin/sh", st.Command)
	assert.Equal(t, home, st.Cwd)
	assert.False(t, st.Exited)
}

func TestSpawnAppliesDefaultsAndSize(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.client.Spawn(ctx, &pb.SpawnRequest{Command: "sleep 30", Cols: 132})
	require.NoError(t, err)

	st, err := f.client.Status(ctx, resp.Handle)
	require.NoError(t, err)
	assert.Equal(t, uint32(132), st.Cols)
	assert.Equal(t, uint32(24), st.Rows)
	assert.Equal(t, resp.Id, st.Id)
	assert.Equal(t, resp.Pid, st.Pid)

	require.NoError(t, f.client.Resize(ctx, resp.Handle, 100, 40))
	st, err = f.client.Status(ctx, resp.Handle)
	require.NoError(t, err)
	assert.Equal(t, uint32(100), st.Cols)
	assert.Equal(t, uint32(40), st.Rows)

	st2 := requireCode(t, f.client.Resize(ctx, resp.Handle, 0, 40), codes.InvalidArgument)
	assert.Equal(t, []string{"cols"}, badFields(st2))
}

func TestKillWithSignal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp := f.spawn(t, "sleep 30")

	require.NoError(t, f.client.Kill(ctx, resp.Handle, int32(syscall.SIGTERM)))
	require.Eventually(t, func() bool {
		st, err := f.client.Status(ctx, resp.Handle)
		return err == nil && st.Exited && st.ExitCode == 128+int32(syscall.SIGTERM)
	}, 5*time.Second, 10*time.Millisecond)

	requireCode(t, f.client.Kill(ctx, resp.Handle, 99), codes.InvalidArgument)
}

func TestUnknownHandles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.client.Status(ctx, 4242)
	requireCode(t, err, codes.NotFound)
	_, err = f.client.Read(ctx, 4242, 0)
	requireCode(t, err, codes.NotFound)

	_, err = f.client.Status(ctx, 0)
	requireCode(t, err, codes.InvalidArgument)

	assert.NoError(t, f.client.Release(ctx, 4242))
}

func TestListAndRelease(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.spawn(t, "sleep 30")
	b := f.spawn(t, "sleep 30")

	list, err := f.client.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.Handle, list[0].Handle)
	assert.Equal(t, b.Handle, list[1].Handle)

	require.NoError(t, f.client.Release(ctx, a.Handle))
	_, err = f.client.Status(ctx, a.Handle)
	requireCode(t, err, codes.NotFound)

	list, err = f.client.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.Handle, list[0].Handle)
}

func TestJournalService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp := f.spawn(t, "sleep 30")
	require.NoError(t, f.client.Release(ctx, resp.Handle))
	require.NoError(t, f.journal.Sync(ctx))

	entries, err := f.client.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, resp.Id, entries[0].Id)
	assert.Equal(t, resp.Handle, entries[0].Handle)
	assert.Equal(t, "sleep 30", entries[0].Command)

	entry, err := f.client.Entry(ctx, resp.Id)
	require.NoError(t, err)
	assert.NotZero(t, entry.ClosedAt)

	_, err = f.client.Entry(ctx, "missing")
	requireCode(t, err, codes.NotFound)
	_, err = f.client.Entry(ctx, "")
	requireCode(t, err, codes.InvalidArgument)
}
