package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	walkerrender "github.com/paseo-app/paseo-cli/internal/adapters/render/walker"
	"github.com/paseo-app/paseo-cli/internal/application"
	"github.com/paseo-app/paseo-cli/internal/domain"
)

func newWalksCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walks",
		Short: "Browse and run walks",
	}

	cmd.AddCommand(
		newWalksListCmd(app),
		newWalksShowCmd(app),
		newWalkActionCmd(app, "accept", "Accept a pending walk request", app.service.AcceptWalk),
		newWalkActionCmd(app, "reject", "Reject a pending walk request", app.service.RejectWalk),
		newWalkActionCmd(app, "start", "Start an accepted walk scheduled for today", app.service.StartWalk),
		newWalkActionCmd(app, "end", "Finish the walk in progress", app.service.EndWalk),
		newWalksPhotosCmd(app),
		newWalksPhotoCmd(app),
	)

	return cmd
}

func newWalksListCmd(app *app) *cobra.Command {
	var pendingOnly, acceptedOnly, historyOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show pending, accepted and past walks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var board application.Board

			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading walks...", func(ctx context.Context) error {
				board = app.service.LoadBoard(ctx)
				return nil
			})
			if err != nil {
				return err
			}

			if pendingOnly || acceptedOnly || historyOnly {
				if !pendingOnly {
					board.Pending = nil
				}
				if !acceptedOnly {
					board.Accepted = nil
				}
				if !historyOnly {
					board.History = nil
				}
			}

			rendered, err := app.boardRenderer(board, app.renderOptions())
			if err != nil {
				return fmt.Errorf("render walks: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "Only show pending requests")
	cmd.Flags().BoolVar(&acceptedOnly, "accepted", false, "Only show accepted walks")
	cmd.Flags().BoolVar(&historyOnly, "history", false, "Only show past walks")

	return cmd
}

func newWalksShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <walk-id>",
		Short: "Show one walk in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			walkID, err := parseWalkID(args[0])
			if err != nil {
				return err
			}

			walk, err := app.service.WalkDetail(cmd.Context(), walkID)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), walkerrender.RenderWalkDetail(walk, app.renderOptions()))
			return err
		},
	}
}

func newWalkActionCmd(app *app, use, short string, action func(context.Context, domain.Walk) (domain.Walk, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <walk-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			walkID, err := parseWalkID(args[0])
			if err != nil {
				return err
			}

			walk, err := app.service.WalkDetail(cmd.Context(), walkID)
			if err != nil {
				return err
			}

			updated, err := action(cmd.Context(), walk)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Walk #%d is now %s\n", updated.ID, updated.StatusLabel())
			return err
		},
	}
}

func newWalksPhotosCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "photos <walk-id>",
		Short: "List the photos attached to a walk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			walkID, err := parseWalkID(args[0])
			if err != nil {
				return err
			}

			photos, err := app.service.WalkPhotos(cmd.Context(), walkID)
			if err != nil {
				return err
			}

			if len(photos) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No photos yet.")
				return err
			}

			for _, photo := range photos {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "#%d %s\n", photo.ID, photo.Photo)
			}
			return nil
		},
	}
}

func newWalksPhotoCmd(app *app) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "photo <walk-id>",
		Short: "Upload a photo taken during a walk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			walkID, err := parseWalkID(args[0])
			if err != nil {
				return err
			}

			photo, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("open photo: %w", err)
			}
			defer func() { _ = photo.Close() }()

			if err := app.service.UploadWalkPhoto(cmd.Context(), walkID, photo, filePath); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Photo uploaded")
			return err
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Photo file to upload")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func parseWalkID(arg string) (int, error) {
	walkID, err := strconv.Atoi(arg)
	if err != nil || walkID <= 0 {
		return 0, fmt.Errorf("invalid walk id %q", arg)
	}
	return walkID, nil
}
