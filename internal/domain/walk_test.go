package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanStartRequiresAcceptedStatusAndSameDay(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		status      string
		scheduledAt string
		want        bool
	}{
		{name: "accepted today", status: StatusAccepted, scheduledAt: "2026-08-28T14:00:00Z", want: true},
		{name: "accepted today date only", status: StatusAccepted, scheduledAt: "2026-08-28", want: true},
		{name: "accepted tomorrow", status: StatusAccepted, scheduledAt: "2026-08-29T09:00:00Z", want: false},
		{name: "accepted yesterday", status: StatusAccepted, scheduledAt: "2026-08-27T09:00:00Z", want: false},
		{name: "pending today", status: StatusPending, scheduledAt: "2026-08-28T14:00:00Z", want: false},
		{name: "walking today", status: StatusWalking, scheduledAt: "2026-08-28T14:00:00Z", want: false},
		{name: "finished today", status: StatusFinished, scheduledAt: "2026-08-28T14:00:00Z", want: false},
		{name: "accepted unparseable schedule", status: StatusAccepted, scheduledAt: "whenever", want: false},
		{name: "accepted empty schedule", status: StatusAccepted, scheduledAt: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Walk{Status: tt.status, ScheduledAt: tt.scheduledAt}
			assert.Equal(t, tt.want, w.CanStart(now))
		})
	}
}

func TestInProgressAndFinishedAreMutuallyExclusive(t *testing.T) {
	tests := []struct {
		status         string
		wantInProgress bool
		wantFinished   bool
	}{
		{status: StatusPending, wantInProgress: false, wantFinished: false},
		{status: StatusAccepted, wantInProgress: false, wantFinished: false},
		{status: StatusWalking, wantInProgress: true, wantFinished: false},
		{status: StatusInProgress, wantInProgress: true, wantFinished: false},
		{status: StatusFinished, wantInProgress: false, wantFinished: true},
		{status: StatusCompleted, wantInProgress: false, wantFinished: true},
		{status: StatusRejected, wantInProgress: false, wantFinished: false},
		{status: "", wantInProgress: false, wantFinished: false},
	}

	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			w := Walk{Status: tt.status}
			assert.Equal(t, tt.wantInProgress, w.InProgress())
			assert.Equal(t, tt.wantFinished, w.Finished())
			assert.False(t, w.InProgress() && w.Finished())
		})
	}
}

func TestParseServerTimeAcceptsObservedLayouts(t *testing.T) {
	parsed, ok := ParseServerTime("2026-08-28T14:00:00Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC), parsed)

	parsed, ok = ParseServerTime("2026-08-28 14:00:00")
	require.True(t, ok)
	assert.Equal(t, 14, parsed.Hour())

	_, ok = ParseServerTime("28/08/2026")
	assert.False(t, ok)

	_, ok = ParseServerTime("")
	assert.False(t, ok)
}

func TestWalkDisplayFallbacks(t *testing.T) {
	defaults := DisplayDefaults{DurationMinutes: 30, PriceHour: "10"}

	var w Walk
	assert.Equal(t, "unnamed pet", w.PetLabel())
	assert.Equal(t, "unknown owner", w.OwnerLabel())
	assert.Equal(t, "unknown", w.StatusLabel())
	assert.Equal(t, "unscheduled", w.ScheduleLabel())
	assert.Equal(t, "no address", w.AddressLabel())
	assert.Equal(t, "no notes", w.NotesLabel())
	assert.Equal(t, "30 min", w.DurationLabel(defaults))

	w = Walk{
		Pet:             Pet{Name: "Rocky"},
		Owner:           Owner{Name: "Ana"},
		DurationMinutes: 45,
	}
	assert.Equal(t, "Rocky", w.PetLabel())
	assert.Equal(t, "Ana", w.OwnerLabel())
	assert.Equal(t, "45 min", w.DurationLabel(defaults))
}
