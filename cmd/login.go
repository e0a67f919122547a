package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paseo-app/paseo-cli/internal/ports"
)

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", email)
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Walker account email")
	cmd.Flags().StringVar(&password, "password", "", "Walker account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Logout(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return err
		},
	}
}

func newRegisterCmd(app *app) *cobra.Command {
	var email, password, name, priceHour, photoPath string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new walker account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := ports.RegisterInput{
				Email:     email,
				Password:  password,
				Name:      name,
				PriceHour: priceHour,
			}

			if photoPath != "" {
				photo, err := os.Open(photoPath)
				if err != nil {
					return fmt.Errorf("open photo: %w", err)
				}
				defer func() { _ = photo.Close() }()
				in.Photo = photo
				in.PhotoName = photoPath
			}

			result, err := app.service.Register(cmd.Context(), in)
			if err != nil {
				return err
			}

			if result.Message != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s; run \"paseo login\" to start\n", email)
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&priceHour, "price-hour", "", "Hourly rate")
	cmd.Flags().StringVar(&photoPath, "photo", "", "Profile photo file")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
