package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	pb "github.com/monotykamary/openmux-pty/gen/proto"
)

var historyLimit int32

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "Show recently run sessions from the journal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := dial()
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := callContext(cmd.Context())
		defer cancel()

		var entries []*pb.JournalEntry
		if len(args) == 1 {
			entry, err := client.Entry(ctx, args[0])
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		} else {
			entries, err = client.Recent(ctx, historyLimit)
			if err != nil {
				return err
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tHANDLE\tSTARTED\tEXIT\tDURATION\tCOMMAND")
		for _, e := range entries {
			exit, duration := "-", "-"
			if e.Exited {
				exit = fmt.Sprint(e.ExitCode)
			}
			if e.ExitedAt != 0 && e.StartedAt != 0 {
				duration = (time.Duration(e.ExitedAt-e.StartedAt) * time.Millisecond).String()
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
				e.Id, e.Handle, time.UnixMilli(e.StartedAt).Format(time.DateTime), exit, duration, e.Command)
		}
		return w.Flush()
	},
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that ptyd is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := dial()
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := callContext(cmd.Context())
		defer cancel()

		start := time.Now()
		msg, err := client.Ping(ctx, "")
		if err != nil {
			return err
		}
		v, err := client.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s from %s (ptyd %s, build %s) in %s\n",
			msg, addr, v.Version, v.Build, time.Since(start).Round(time.Microsecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd, pingCmd)
	historyCmd.Flags().Int32VarP(&historyLimit, "limit", "n", 20, "Number of sessions to show")
}
