package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/paseo-app/paseo-cli/internal/domain"
	"github.com/paseo-app/paseo-cli/internal/ports"
	"github.com/paseo-app/paseo-cli/internal/reporter"
)

// LocationReporter is the slice of the background reporter the service
// drives. Start must be idempotent and must refuse to run without a usable
// location source.
type LocationReporter interface {
	Start() error
	Stop()
	Running() bool
}

// Service orchestrates the session store, the API client and the background
// reporter on behalf of the CLI commands.
type Service struct {
	api      ports.WalkerAPI
	sessions ports.SessionStore
	reporter LocationReporter
	clock    ports.Clock
}

func NewService(api ports.WalkerAPI, sessions ports.SessionStore, rep LocationReporter, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		api:      api,
		sessions: sessions,
		reporter: rep,
		clock:    clock,
	}
}

// Login authenticates and persists the session. The email lands in the
// display cache best-effort; a cache write failure never fails the login.
func (s *Service) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := s.sessions.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}

	_ = s.sessions.SaveUserInfo(ctx, domain.CachedProfile{Email: email})

	return nil
}

// Logout clears the local session only. A live reporter is left running on
// purpose: its next report goes out with no token or a stale one, the server
// answers 401, and the reporter shuts itself down.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Service) Register(ctx context.Context, in ports.RegisterInput) (ports.RegisterResult, error) {
	result, err := s.api.Register(ctx, in)
	if err != nil {
		return ports.RegisterResult{}, fmt.Errorf("register: %w", err)
	}
	return result, nil
}

// SetAvailability flips the server-side flag and, only after the server
// accepted the change, starts or stops the reporter. The returned reporting
// flag says whether location reporting is live afterwards.
func (s *Service) SetAvailability(ctx context.Context, available bool) (reporting bool, err error) {
	if err := s.api.SetAvailability(ctx, available); err != nil {
		return s.reporter.Running(), fmt.Errorf("set availability: %w", err)
	}

	if !available {
		s.reporter.Stop()
		return false, nil
	}

	if err := s.reporter.Start(); err != nil {
		if errors.Is(err, reporter.ErrLocationUnavailable) {
			return false, fmt.Errorf("availability is on but location reporting could not start: %w", err)
		}
		return false, fmt.Errorf("start location reporting: %w", err)
	}

	return true, nil
}

func (s *Service) Reporting() bool {
	return s.reporter.Running()
}

// Board groups the three walk lists a walker works from.
type Board struct {
	Pending  []domain.Walk
	Accepted []domain.Walk
	History  []domain.Walk
}

// LoadBoard fetches the three lists concurrently. The fetches are
// independent: one failing resolves to an empty list without touching the
// others, so a flaky endpoint degrades one column instead of the screen.
func (s *Service) LoadBoard(ctx context.Context) Board {
	var board Board
	var wg sync.WaitGroup

	fetch := func(dst *[]domain.Walk, load func(context.Context) ([]domain.Walk, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			walks, err := load(ctx)
			if err != nil || walks == nil {
				*dst = []domain.Walk{}
				return
			}
			*dst = walks
		}()
	}

	fetch(&board.Pending, s.api.PendingWalks)
	fetch(&board.Accepted, s.api.AcceptedWalks)
	fetch(&board.History, s.api.WalkHistory)
	wg.Wait()

	return board
}

func (s *Service) WalkDetail(ctx context.Context, walkID int) (domain.Walk, error) {
	walk, err := s.api.WalkDetail(ctx, walkID)
	if err != nil {
		return domain.Walk{}, fmt.Errorf("load walk %d: %w", walkID, err)
	}
	return walk, nil
}

// The four lifecycle calls patch the local copy optimistically after a 2xx.
// The server remains the source of truth; the next fetch overwrites the
// patch. No legality check happens client-side: an illegal transition is the
// server's to reject.

func (s *Service) AcceptWalk(ctx context.Context, walk domain.Walk) (domain.Walk, error) {
	if err := s.api.AcceptWalk(ctx, walk.ID); err != nil {
		return walk, fmt.Errorf("accept walk %d: %w", walk.ID, err)
	}
	walk.Status = domain.StatusAccepted
	return walk, nil
}

func (s *Service) RejectWalk(ctx context.Context, walk domain.Walk) (domain.Walk, error) {
	if err := s.api.RejectWalk(ctx, walk.ID); err != nil {
		return walk, fmt.Errorf("reject walk %d: %w", walk.ID, err)
	}
	walk.Status = domain.StatusRejected
	return walk, nil
}

func (s *Service) StartWalk(ctx context.Context, walk domain.Walk) (domain.Walk, error) {
	if err := s.api.StartWalk(ctx, walk.ID); err != nil {
		return walk, fmt.Errorf("start walk %d: %w", walk.ID, err)
	}
	walk.Status = domain.StatusWalking
	return walk, nil
}

func (s *Service) EndWalk(ctx context.Context, walk domain.Walk) (domain.Walk, error) {
	if err := s.api.EndWalk(ctx, walk.ID); err != nil {
		return walk, fmt.Errorf("end walk %d: %w", walk.ID, err)
	}
	walk.Status = domain.StatusFinished
	return walk, nil
}

func (s *Service) UploadWalkPhoto(ctx context.Context, walkID int, photo io.Reader, filename string) error {
	if err := s.api.UploadWalkPhoto(ctx, walkID, photo, filename); err != nil {
		return fmt.Errorf("upload photo for walk %d: %w", walkID, err)
	}
	return nil
}

func (s *Service) UploadWalkerPhoto(ctx context.Context, photo io.Reader, filename string) error {
	if err := s.api.UploadWalkerPhoto(ctx, photo, filename); err != nil {
		return fmt.Errorf("upload walker photo: %w", err)
	}
	return nil
}

func (s *Service) WalkPhotos(ctx context.Context, walkID int) ([]domain.WalkPhoto, error) {
	photos, err := s.api.WalkPhotos(ctx, walkID)
	if err != nil {
		return nil, fmt.Errorf("load photos for walk %d: %w", walkID, err)
	}
	return photos, nil
}

// ProfileView is what the profile screen shows: the live server profile, or
// the cached display fields with availability defaulted to off when the
// fetch failed.
type ProfileView struct {
	Profile   domain.WalkerProfile
	FromCache bool
}

// Profile fetches the current walker profile and refreshes the display
// cache. On any error it degrades to the cached fields; the profile screen
// always has something to show.
func (s *Service) Profile(ctx context.Context) ProfileView {
	profile, err := s.api.CurrentUser(ctx)
	if err == nil {
		_ = s.sessions.SaveUserInfo(ctx, domain.CachedProfile{
			Name:  profile.Name,
			Email: profile.Email,
			Photo: profile.Photo,
		})
		return ProfileView{Profile: profile}
	}

	cached := s.sessions.UserInfo(ctx)
	return ProfileView{
		Profile: domain.WalkerProfile{
			Name:  cached.Name,
			Email: cached.Email,
			Photo: cached.Photo,
		},
		FromCache: true,
	}
}

func (s *Service) Reviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.api.Reviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	return reviews, nil
}

func (s *Service) ReviewDetail(ctx context.Context, reviewID int) (domain.Review, error) {
	review, err := s.api.ReviewDetail(ctx, reviewID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("load review %d: %w", reviewID, err)
	}
	return review, nil
}
