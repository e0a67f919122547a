package domain

// ReviewUser is the trimmed-down owner record embedded in a review.
type ReviewUser struct {
	ID    int
	Name  string
	Email string
}

// WalkSummary is the trimmed-down walk record embedded in a review, enough
// to link back to the engagement without pulling the full walk.
type WalkSummary struct {
	ID          int
	PetName     string
	OwnerName   string
	ScheduledAt string
	Status      string
}

// Review is read-only from the client's perspective; ratings run 0 through 5.
type Review struct {
	ID        int
	Rating    int
	Comment   string
	WalkID    int
	CreatedAt string
	User      *ReviewUser
	Walk      *WalkSummary
}

func (r Review) OwnerLabel() string {
	if r.User != nil && r.User.Name != "" {
		return r.User.Name
	}
	if r.Walk != nil && r.Walk.OwnerName != "" {
		return r.Walk.OwnerName
	}
	return "client"
}

func (r Review) PetLabel() string {
	if r.Walk != nil && r.Walk.PetName != "" {
		return r.Walk.PetName
	}
	return "pet"
}

func (r Review) CommentLabel() string {
	if r.Comment == "" {
		return "no comment"
	}
	return r.Comment
}

func (r Review) DateLabel() string {
	if r.CreatedAt == "" {
		return "no date"
	}
	return r.CreatedAt
}
