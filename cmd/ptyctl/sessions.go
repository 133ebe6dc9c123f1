package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var killSignal int32

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List open sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := dial()
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := callContext(cmd.Context())
		defer cancel()
		sessions, err := client.List(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "HANDLE\tPID\tSIZE\tSTATE\tSTARTED\tCOMMAND")
		for _, s := range sessions {
			state := "running"
			if s.Exited {
				state = fmt.Sprintf("exited(%d)", s.ExitCode)
			}
			fmt.Fprintf(w, "%d\t%d\t%dx%d\t%s\t%s\t%s\n",
				s.Handle, s.Pid, s.Cols, s.Rows, state,
				time.UnixMilli(s.StartedAt).Format(time.TimeOnly), s.Command)
		}
		return w.Flush()
	},
}

var killCmd = &cobra.Command{
	Use:   "kill <handle>",
	Short: "Kill the command of a session",
	Args:  cobra.ExactArgs(1),
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

		ctx, cancel := callContext(cmd.Context())
		defer cancel()
		return client.Kill(ctx, handle, killSignal)
	},
}

var closeCmd = &cobra.Command{
	Use:   "close <handle>",
	Short: "Close a session, killing its command if still running",
	Args:  cobra.ExactArgs(1),
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

		ctx, cancel := callContext(cmd.Context())
		defer cancel()
		return client.Release(ctx, handle)
	},
}

func init() {
	rootCmd.AddCommand(lsCmd, killCmd, closeCmd)
	killCmd.Flags().Int32VarP(&killSignal, "signal", "s", 0, "Signal number to send (default SIGKILL)")
}
