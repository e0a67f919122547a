package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	walkerrender "github.com/paseo-app/paseo-cli/internal/adapters/render/walker"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and update your walker profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := app.service.Profile(cmd.Context())
			rendered := walkerrender.RenderProfile(view, app.service.Reporting(), app.renderOptions())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.AddCommand(newProfilePhotoCmd(app))

	return cmd
}

func newProfilePhotoCmd(app *app) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "photo",
		Short: "Upload a new profile photo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			photo, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("open photo: %w", err)
			}
			defer func() { _ = photo.Close() }()

			if err := app.service.UploadWalkerPhoto(cmd.Context(), photo, filePath); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Profile photo updated")
			return err
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Photo file to upload")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
