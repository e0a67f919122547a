// Package walker renders the CLI views: the walk board, the profile card and
// the review list.
package walker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/paseo-app/paseo-cli/internal/application"
	"github.com/paseo-app/paseo-cli/internal/domain"
)

type RenderOptions struct {
	Now      time.Time
	Defaults domain.DisplayDefaults
	// BaseURL resolves relative photo paths into full URLs.
	BaseURL string
}

func renderBoardView(board application.Board, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Walks"),
		s.header.Render(fmt.Sprintf("pending: %d  accepted: %d  history: %d",
			len(board.Pending), len(board.Accepted), len(board.History))),
	}

	lines = append(lines, s.section.Render(renderWalkList("Pending requests", board.Pending, opts, s)))
	lines = append(lines, s.section.Render(renderWalkList("Accepted", board.Accepted, opts, s)))
	lines = append(lines, s.section.Render(renderWalkList("History", board.History, opts, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderWalkList(label string, walks []domain.Walk, opts RenderOptions, s styles) string {
	parts := []string{s.walk.Render(label)}

	if len(walks) == 0 {
		parts = append(parts, s.empty.Render("  none"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, walk := range walks {
		parts = append(parts, renderWalkLine(walk, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderWalkLine(walk domain.Walk, opts RenderOptions, s styles) string {
	line := fmt.Sprintf("  #%d %s with %s  %s  %s",
		walk.ID,
		walk.PetLabel(),
		walk.OwnerLabel(),
		walk.ScheduleLabel(),
		walk.DurationLabel(opts.Defaults),
	)

	rendered := s.detail.Render(line) + " " + s.badge.Render("["+walk.StatusLabel()+"]")

	if walk.CanStart(opts.Now) {
		rendered += " " + s.startable.Render("can start")
	}

	return rendered
}

// RenderWalkDetail is the long view of one walk.
func RenderWalkDetail(walk domain.Walk, opts RenderOptions) string {
	s := newStyles()

	rows := []string{
		s.title.Render(fmt.Sprintf("Walk #%d", walk.ID)) + " " + s.badge.Render("["+walk.StatusLabel()+"]"),
		s.detail.Render("pet:      " + walk.PetLabel() + " (" + petType(walk) + ")"),
		s.detail.Render("owner:    " + walk.OwnerLabel()),
		s.detail.Render("when:     " + walk.ScheduleLabel()),
		s.detail.Render("duration: " + walk.DurationLabel(opts.Defaults)),
		s.detail.Render("address:  " + walk.AddressLabel()),
		s.detail.Render("notes:    " + walk.NotesLabel()),
	}

	if walk.CanStart(opts.Now) {
		rows = append(rows, s.startable.Render("ready to start today"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func petType(walk domain.Walk) string {
	if walk.Pet.Type == "" {
		return "pet"
	}
	return walk.Pet.Type
}

// RenderProfile shows the walker profile, flagging when the values come from
// the local cache because the server could not be reached.
func RenderProfile(view application.ProfileView, reporting bool, opts RenderOptions) string {
	s := newStyles()
	profile := view.Profile

	rows := []string{s.title.Render(profile.DisplayName())}

	if view.FromCache {
		rows = append(rows, s.warning.Render("offline: showing cached profile"))
	}

	rows = append(rows, s.detail.Render("email:        "+orDash(profile.Email)))
	rows = append(rows, s.detail.Render("price/hour:   "+profile.PriceHourLabel(opts.Defaults)))
	rows = append(rows, s.detail.Render("available:    "+yesNo(profile.IsAvailable)))
	rows = append(rows, s.detail.Render("reporting:    "+yesNo(reporting)))

	if profile.HasPhoto() {
		rows = append(rows, s.meta.Render("photo:        "+profile.PhotoURL(opts.BaseURL)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderReviews lists customer reviews with a five-star rating bar.
func RenderReviews(reviews []domain.Review) string {
	return renderReviews(reviews, newStyles())
}

func renderReviews(reviews []domain.Review, s styles) string {
	lines := []string{
		s.title.Render("Reviews"),
		s.header.Render(fmt.Sprintf("reviews: %d", len(reviews))),
	}

	if len(reviews) == 0 {
		lines = append(lines, s.empty.Render("No reviews yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, review := range reviews {
		lines = append(lines, s.section.Render(renderReview(review, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderReview(review domain.Review, s styles) string {
	rows := []string{
		s.walk.Render(fmt.Sprintf("%s about %s", review.OwnerLabel(), review.PetLabel())) +
			" " + renderStars(review.Rating, s),
		s.detail.Render("  " + review.CommentLabel()),
		s.meta.Render(fmt.Sprintf("  walk #%d  %s", review.WalkID, review.DateLabel())),
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderStars(rating int, s styles) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	return s.starFill.Render(strings.Repeat("★", rating)) +
		s.starEmpty.Render(strings.Repeat("☆", 5-rating))
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
