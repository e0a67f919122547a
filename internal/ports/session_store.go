package ports

import (
	"context"

	"github.com/paseo-app/paseo-cli/internal/domain"
)

// SessionStore is the single source of truth for whether a walker session is
// active. Writes are whole-record replacements and readers tolerate absence,
// so no caller-side locking is needed.
type SessionStore interface {
	SaveToken(ctx context.Context, token string) error
	// Token returns the stored bearer token, or "" when no session exists.
	Token(ctx context.Context) (string, error)
	HasToken(ctx context.Context) bool
	// SaveUserInfo overwrites all cached display fields together; there is
	// no partial update.
	SaveUserInfo(ctx context.Context, info domain.CachedProfile) error
	UserInfo(ctx context.Context) domain.CachedProfile
	// Clear removes the token and every cached display field. Logout.
	Clear(ctx context.Context) error
}
