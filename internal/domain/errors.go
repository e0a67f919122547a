package domain

import "errors"

var (
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session expired")
	ErrWalkNotFound   = errors.New("walk not found")
	ErrReviewNotFound = errors.New("review not found")
)
