package domain

import "strings"

// WalkerProfile is the server-sourced profile of the logged-in walker. The
// client holds a read-only, possibly stale copy.
type WalkerProfile struct {
	ID          int
	Name        string
	Email       string
	Photo       string
	PriceHour   string
	IsAvailable bool
	CreatedAt   string
	UpdatedAt   string
}

// CachedProfile holds the display fields persisted alongside the session
// token. It is a soft cache with no expiry, overwritten whole on every save.
type CachedProfile struct {
	Name  string
	Email string
	Photo string
}

// DisplayDefaults are the configurable fallbacks used when the server omits
// a display field.
type DisplayDefaults struct {
	DurationMinutes int
	PriceHour       string
}

func (p WalkerProfile) DisplayName() string {
	if p.Name == "" {
		return "Walker"
	}
	return p.Name
}

func (p WalkerProfile) HasPhoto() bool {
	return strings.TrimSpace(p.Photo) != ""
}

// PhotoURL resolves the profile photo against the API base URL. Absolute
// URLs pass through; relative paths are joined with or without a leading
// slash.
func (p WalkerProfile) PhotoURL(baseURL string) string {
	photo := strings.TrimSpace(p.Photo)
	if photo == "" {
		return ""
	}

	if strings.HasPrefix(photo, "http://") || strings.HasPrefix(photo, "https://") {
		return photo
	}

	base := strings.TrimSuffix(baseURL, "/")
	if strings.HasPrefix(photo, "/") {
		return base + photo
	}
	return base + "/" + photo
}

func (p WalkerProfile) PriceHourLabel(defaults DisplayDefaults) string {
	if strings.TrimSpace(p.PriceHour) == "" {
		return defaults.PriceHour
	}
	return p.PriceHour
}
