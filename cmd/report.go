package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// newReportCmd runs the location reporter in the foreground. The loop itself
// is the same one availability toggles drive in the background; here the
// process stays up until interrupted, the token expires, or the server
// rejects the session.
func newReportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Run the location reporter in the foreground",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := app.reporter.Start(); err != nil {
				return fmt.Errorf("start reporter: %w", err)
			}

			select {
			case <-ctx.Done():
				app.reporter.Stop()
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Reporter stopped")
				return err
			case <-app.reporter.Done():
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Reporter stopped: session expired, please log in again")
				return err
			}
		},
	}
}
