package api

import "github.com/paseo-app/paseo-cli/internal/domain"

// Wire shapes. The server sends walk-related records flat with snake_case
// keys; the domain types regroup them. Nullable string columns decode to ""
// which the domain treats as absent.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerResponse struct {
	Message string         `json:"message"`
	Walker  *profileSchema `json:"walker"`
}

type availabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

type locationRequest struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type walkSchema struct {
	ID              int    `json:"id"`
	Status          string `json:"status"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`

	PetID    int    `json:"pet_id"`
	PetName  string `json:"pet_name"`
	PetType  string `json:"pet_type"`
	PetPhoto string `json:"pet_photo"`
	PetNotes string `json:"pet_notes"`

	OwnerID    int    `json:"owner_id"`
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`

	WalkerID   int    `json:"walker_id"`
	WalkerName string `json:"walker_name"`

	UserAddressID int    `json:"user_address_id"`
	Address       string `json:"address"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`

	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at"`
}

func (s walkSchema) toDomain() domain.Walk {
	return domain.Walk{
		ID:              s.ID,
		Status:          s.Status,
		ScheduledAt:     s.ScheduledAt,
		DurationMinutes: s.DurationMinutes,
		Notes:           s.Notes,
		Pet: domain.Pet{
			ID:    s.PetID,
			Name:  s.PetName,
			Type:  s.PetType,
			Photo: s.PetPhoto,
			Notes: s.PetNotes,
		},
		Owner: domain.Owner{
			ID:    s.OwnerID,
			Name:  s.OwnerName,
			Email: s.OwnerEmail,
		},
		Walker: domain.WalkerRef{
			ID:   s.WalkerID,
			Name: s.WalkerName,
		},
		Address:    s.Address,
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
	}
}

func walksToDomain(schemas []walkSchema) []domain.Walk {
	walks := make([]domain.Walk, 0, len(schemas))
	for _, s := range schemas {
		walks = append(walks, s.toDomain())
	}
	return walks
}

type walkPhotoSchema struct {
	ID        int    `json:"id"`
	WalkID    int    `json:"walk_id"`
	Photo     string `json:"photo"`
	CreatedAt string `json:"created_at"`
}

func (s walkPhotoSchema) toDomain() domain.WalkPhoto {
	return domain.WalkPhoto(s)
}

type profileSchema struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Photo       string `json:"photo"`
	PriceHour   string `json:"price_hour"`
	IsAvailable bool   `json:"is_available"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (s profileSchema) toDomain() domain.WalkerProfile {
	return domain.WalkerProfile(s)
}

type reviewUserSchema struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type reviewWalkSchema struct {
	ID          int    `json:"id"`
	PetName     string `json:"pet_name"`
	OwnerName   string `json:"owner_name"`
	ScheduledAt string `json:"scheduled_at"`
	Status      string `json:"status"`
}

type reviewSchema struct {
	ID        int               `json:"id"`
	Rating    int               `json:"rating"`
	Comment   string            `json:"comment"`
	WalkID    int               `json:"walk_id"`
	CreatedAt string            `json:"created_at"`
	User      *reviewUserSchema `json:"user"`
	Walk      *reviewWalkSchema `json:"walk"`
}

func (s reviewSchema) toDomain() domain.Review {
	review := domain.Review{
		ID:        s.ID,
		Rating:    s.Rating,
		Comment:   s.Comment,
		WalkID:    s.WalkID,
		CreatedAt: s.CreatedAt,
	}
	if s.User != nil {
		user := domain.ReviewUser(*s.User)
		review.User = &user
	}
	if s.Walk != nil {
		walk := domain.WalkSummary(*s.Walk)
		review.Walk = &walk
	}
	return review
}
