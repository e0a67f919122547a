package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAvailabilityCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Toggle walker availability",
	}

	cmd.AddCommand(
		newAvailabilityOnCmd(app),
		newAvailabilityOffCmd(app),
		newAvailabilityStatusCmd(app),
	)

	return cmd
}

func newAvailabilityOnCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "on",
		Short: "Mark yourself available and start location reporting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reporting, err := app.service.SetAvailability(cmd.Context(), true)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Available: yes, reporting: %s\n", yesNo(reporting))
			return err
		},
	}
}

func newAvailabilityOffCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "off",
		Short: "Mark yourself unavailable and stop location reporting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reporting, err := app.service.SetAvailability(cmd.Context(), false)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Available: no, reporting: %s\n", yesNo(reporting))
			return err
		},
	}
}

func newAvailabilityStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether location reporting is running",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Reporting: %s\n", yesNo(app.service.Reporting()))
			return err
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
