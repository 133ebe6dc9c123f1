package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	pb "github.com/monotykamary/openmux-pty/gen/proto"
	"github.com/monotykamary/openmux-pty/internal/rpc"
)

var (
	runCwd string
	runEnv []string
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [-- command [args...]]",
	Short: "Run a command on a remote terminal attached to this one",
	Long: `Spawns the command on ptyd, puts the local terminal in raw mode and
forwards keystrokes and window size changes until the command exits.
ptyctl then exits with the command's exit code.

Without a command the daemon starts the user's shell.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd, attachCmd)
	runCmd.Flags().StringVar(&runCwd, "cwd", "", "Working directory of the command")
	runCmd.Flags().StringArrayVar(&runEnv, "env", nil, "Environment override as KEY=VALUE (repeatable)")
}

func runRun(cmd *cobra.Command, args []string) error {
	client, err := dial()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var line string
	if len(args) > 0 {
		line = shellquote.Join(args...)
	}
	req := &pb.SpawnRequest{
		Command: line,
		Cwd:     runCwd,
		Env:     runEnv,
	}
	stdout := int(os.Stdout.Fd())
	if term.IsTerminal(stdout) {
		if cols, rows, err := term.GetSize(stdout); err == nil && cols > 0 && rows > 0 {
			req.Cols, req.Rows = uint32(cols), uint32(rows)
		}
	}

	spawnCtx, spawnCancel := callContext(ctx)
	resp, err := client.Spawn(spawnCtx, req)
	spawnCancel()
	if err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	defer func() {
		releaseCtx, releaseCancel := callContext(context.Background())
		_ = client.Release(releaseCtx, resp.Handle)
		releaseCancel()
	}()

	return attach(ctx, client, resp.Handle)
}

var attachCmd = &cobra.Command{
	Use:   "attach <handle>",
	Short: "Attach this terminal to a running session",
	Long: `Streams the session's output and forwards keystrokes and window size
changes until its command exits. The session stays open afterwards; use
ptyctl close to release it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handle, err := parseHandle(args[0])
		if err != nil {
			return err
		}
		client, err := dial()
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		return attach(ctx, client, handle)
	},
}

// attach wires the local terminal to handle until the remote command
// exits, then reports its exit code as an *exitCodeError.
func attach(ctx context.Context, client *rpc.Client, handle int32) error {
	stream, err := client.StreamOutput(ctx, handle)
	if err != nil {
		return fmt.Errorf("stream: %w", err)
	}

	stdin := int(os.Stdin.Fd())
	if term.IsTerminal(stdin) {
		state, err := term.MakeRaw(stdin)
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer term.Restore(stdin, state)
	}

	go forwardResize(ctx, client, handle)
	go forwardInput(ctx, client, handle, os.Stdin)

	code, err := copyOutput(os.Stdout, stream)
	if err != nil {
		return err
	}
	if code != 0 {
		return &exitCodeError{code: int(code)}
	}
	return nil
}

// copyOutput writes streamed output to w and returns the exit code from
// the final chunk.
func copyOutput(w io.Writer, stream interface{ Recv() (*pb.OutputChunk, error) }) (int32, error) {
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return 0, errors.New("output stream ended without an exit status")
		}
		if err != nil {
			return 0, fmt.Errorf("stream: %w", err)
		}
		if len(chunk.Data) > 0 {
			if _, err := w.Write(chunk.Data); err != nil {
				return 0, err
			}
		}
		if chunk.Exited {
			return chunk.ExitCode, nil
		}
	}
}

// forwardInput copies r to the session until r fails or ctx ends.
func forwardInput(ctx context.Context, client *rpc.Client, handle int32, r io.Reader) {
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := client.Write(ctx, handle, buf[:n]); werr != nil {
				return
			}
		}
		if err != nil || ctx.Err() != nil {
			return
		}
	}
}

// forwardResize keeps the remote terminal size in sync with ours.
func forwardResize(ctx context.Context, client *rpc.Client, handle int32) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)

	for {
		select {
		case <-ctx.Done():
			return
		case <-winch:
			cols, rows, err := term.GetSize(fd)
			if err != nil || cols <= 0 || rows <= 0 {
				continue
			}
			_ = client.Resize(ctx, handle, uint32(cols), uint32(rows))
		}
	}
}
