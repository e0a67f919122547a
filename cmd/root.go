package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "paseo",
		Short:         "Paseo walker CLI: walks, availability and location reporting",
		Long:          "paseo is the dog walker's terminal client: log in, browse and run walks, toggle availability, and keep the background location reporter feeding your position to the service.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newAvailabilityCmd(app),
		newWalksCmd(app),
		newProfileCmd(app),
		newReviewsCmd(app),
		newReportCmd(app),
	)

	return rootCmd
}
