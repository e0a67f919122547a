package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	walkerrender "github.com/paseo-app/paseo-cli/internal/adapters/render/walker"
	"github.com/paseo-app/paseo-cli/internal/domain"
)

func newReviewsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Read the reviews owners left for you",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var reviews []domain.Review

			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading reviews...", func(ctx context.Context) error {
				var fetchErr error
				reviews, fetchErr = app.service.Reviews(ctx)
				return fetchErr
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), walkerrender.RenderReviews(reviews))
			return err
		},
	}

	cmd.AddCommand(newReviewsShowCmd(app))

	return cmd
}

func newReviewsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <review-id>",
		Short: "Show one review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reviewID, err := strconv.Atoi(args[0])
			if err != nil || reviewID <= 0 {
				return fmt.Errorf("invalid review id %q", args[0])
			}

			review, err := app.service.ReviewDetail(cmd.Context(), reviewID)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), walkerrender.RenderReviews([]domain.Review{review}))
			return err
		},
	}
}
