// Command ptyctl is the command-line client of ptyd.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/monotykamary/openmux-pty/internal/config"
	"github.com/monotykamary/openmux-pty/internal/rpc"
)

var addr string

var rootCmd = &cobra.Command{
	Use:           "ptyctl",
	Short:         "Control terminal sessions hosted by ptyd",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&addr, "addr", config.LoadOrDefault().Listen, "ptyd gRPC address")
}

// exitCodeError makes ptyctl exit with a child's exit code.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}
	fmt.Fprintln(os.Stderr, "ptyctl:", err)
	os.Exit(1)
}

func dial() (*rpc.Client, error) {
	client, err := rpc.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", addr, err)
	}
	return client, nil
}

// callContext bounds a single unary call.
func callContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, 10*time.Second)
}

func parseHandle(arg string) (int32, error) {
	h, err := strconv.ParseInt(arg, 10, 32)
	if err != nil || h <= 0 {
		return 0, fmt.Errorf("invalid handle %q", arg)
	}
	return int32(h), nil
}
