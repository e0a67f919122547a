package domain

import (
	"fmt"
	"time"
)

// Walk statuses as the server reports them. The set is open on the server
// side; anything the predicates below do not recognize is treated as pending.
const (
	StatusPending    = "pending"
	StatusAccepted   = "accepted"
	StatusRejected   = "rejected"
	StatusWalking    = "walking"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
	StatusCompleted  = "completed"
)

type Pet struct {
	ID    int
	Name  string
	Type  string
	Photo string
	Notes string
}

type Owner struct {
	ID    int
	Name  string
	Email string
}

type WalkerRef struct {
	ID   int
	Name string
}

// Walk is the client-side copy of one scheduled engagement. The server owns
// the record; local mutation is limited to the optimistic status patch the
// application layer applies after a successful lifecycle call.
type Walk struct {
	ID              int
	Status          string
	ScheduledAt     string
	DurationMinutes int
	Notes           string
	Pet             Pet
	Owner           Owner
	Walker          WalkerRef
	Address         string
	Latitude        string
	Longitude       string
	CreatedAt       string
	UpdatedAt       string
	StartedAt       string
	FinishedAt      string
}

type WalkPhoto struct {
	ID        int
	WalkID    int
	Photo     string
	CreatedAt string
}

// serverTimeLayouts covers the timestamp shapes the API has been observed to
// emit. Date-only comes last so the longer layouts win when seconds are present.
var serverTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseServerTime parses a server timestamp string. The zone of zoneless
// layouts is taken as local, matching how schedules are shown to the walker.
func ParseServerTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range serverTimeLayouts {
		if layout == time.RFC3339 {
			if parsed, err := time.Parse(layout, value); err == nil {
				return parsed, true
			}
			continue
		}
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// CanStart reports whether the walker may begin this walk: it must be
// accepted and scheduled for the same calendar day as now. An unparseable
// schedule never qualifies.
func (w Walk) CanStart(now time.Time) bool {
	if w.Status != StatusAccepted {
		return false
	}

	scheduled, ok := ParseServerTime(w.ScheduledAt)
	if !ok {
		return false
	}

	sy, sm, sd := scheduled.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return sy == ny && sm == nm && sd == nd
}

func (w Walk) InProgress() bool {
	return w.Status == StatusWalking || w.Status == StatusInProgress
}

func (w Walk) Finished() bool {
	return w.Status == StatusFinished || w.Status == StatusCompleted
}

func (w Walk) PetLabel() string {
	if w.Pet.Name == "" {
		return "unnamed pet"
	}
	return w.Pet.Name
}

func (w Walk) OwnerLabel() string {
	if w.Owner.Name == "" {
		return "unknown owner"
	}
	return w.Owner.Name
}

func (w Walk) StatusLabel() string {
	if w.Status == "" {
		return "unknown"
	}
	return w.Status
}

func (w Walk) ScheduleLabel() string {
	if w.ScheduledAt == "" {
		return "unscheduled"
	}
	return w.ScheduledAt
}

func (w Walk) AddressLabel() string {
	if w.Address == "" {
		return "no address"
	}
	return w.Address
}

func (w Walk) NotesLabel() string {
	if w.Notes == "" {
		return "no notes"
	}
	return w.Notes
}

// DurationLabel renders the walk duration, falling back to the configured
// default when the server omitted the field.
func (w Walk) DurationLabel(defaults DisplayDefaults) string {
	minutes := w.DurationMinutes
	if minutes <= 0 {
		minutes = defaults.DurationMinutes
	}
	return fmt.Sprintf("%d min", minutes)
}
