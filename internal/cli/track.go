package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tgienger/stt/internal/timer"
	"github.com/tgienger/stt/internal/tree"
)

// tickInterval is the period of the foreground timer
var tickInterval = timer.Interval

func newTrackCmd(app *App) *cobra.Command {
	var limit time.Duration

	cmd := &cobra.Command{
		Use:   "track <task-id>",
		Short: "Run the timer on a task until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			session, database, err := openSession(app)
			if err != nil {
				return err
			}
			defer database.Close()

			task := session.Find(id)
			if task == nil {
				return errNotFound("task", id)
			}
			if !task.IsLeaf() {
				return notLeafError{id: task.ID, name: task.Name}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if limit > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, limit)
				defer cancel()
			}

			if _, err := session.StartTimer(id); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tracking %s (ctrl+c to stop)\n", task.Name)
			err = session.Timer().Run(ctx, tickInterval, func() {
				fmt.Fprintf(out, "\r⏱ %s", tree.FormatClock(task.ActualSeconds))
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nstopped: %s spent on %s\n", tree.FormatSeconds(task.ActualSeconds), task.Name)
			return nil
		},
	}

	cmd.Flags().DurationVar(&limit, "for", 0, "Stop automatically after this long (e.g. 25m)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Skip config loading
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stt %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}
