package ports

import (
	"context"
	"io"

	"github.com/paseo-app/paseo-cli/internal/domain"
)

// RegisterInput carries the multipart register form. Photo is optional; when
// nil no photo part is sent.
type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	PriceHour string
	Photo     io.Reader
	PhotoName string
}

type RegisterResult struct {
	Message string
	Walker  *domain.WalkerProfile
}

// WalkerAPI is the typed surface of the remote walker REST API. Every
// authenticated operation reads the bearer token from the session store at
// call time, so a token swap or logout is picked up without rebuilding the
// client. Implementations perform no retries; that policy belongs to callers.
type WalkerAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, in RegisterInput) (RegisterResult, error)

	SetAvailability(ctx context.Context, available bool) error
	SendLocation(ctx context.Context, sample domain.LocationSample) error

	PendingWalks(ctx context.Context) ([]domain.Walk, error)
	AcceptedWalks(ctx context.Context) ([]domain.Walk, error)
	WalkHistory(ctx context.Context) ([]domain.Walk, error)
	WalkDetail(ctx context.Context, walkID int) (domain.Walk, error)
	AcceptWalk(ctx context.Context, walkID int) error
	RejectWalk(ctx context.Context, walkID int) error
	StartWalk(ctx context.Context, walkID int) error
	EndWalk(ctx context.Context, walkID int) error

	UploadWalkPhoto(ctx context.Context, walkID int, photo io.Reader, filename string) error
	UploadWalkerPhoto(ctx context.Context, photo io.Reader, filename string) error
	WalkPhotos(ctx context.Context, walkID int) ([]domain.WalkPhoto, error)

	CurrentUser(ctx context.Context) (domain.WalkerProfile, error)

	Reviews(ctx context.Context) ([]domain.Review, error)
	ReviewDetail(ctx context.Context, reviewID int) (domain.Review, error)
}
