// Package reporter runs the background location loop: while the walker is
// available it periodically samples the device position and forwards it to
// the server. It starts and stops on availability flips and shuts itself
// down when the server says the session is no longer valid.
package reporter

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/paseo-app/paseo-cli/internal/domain"
	"github.com/paseo-app/paseo-cli/internal/ports"
)

// DefaultInterval is the server-facing reporting cadence.
const DefaultInterval = 3 * time.Minute

var ErrLocationUnavailable = errors.New("location source unavailable")

// LocationSender is the one API operation the reporter needs.
type LocationSender interface {
	SendLocation(ctx context.Context, sample domain.LocationSample) error
}

type Config struct {
	// Interval between reports; DefaultInterval when zero. The location
	// source is never sampled more often than half of it.
	Interval time.Duration
	// Notify, when set, observes running-state transitions. This is the
	// integration point for a platform-visible "reporting active"
	// indicator; the reporter itself owns no UI.
	Notify func(active bool)
	Clock  ports.Clock
}

type Reporter struct {
	sender   LocationSender
	sessions ports.SessionStore
	source   ports.LocationSource
	interval time.Duration
	notify   func(active bool)
	clock    ports.Clock

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(sender LocationSender, sessions ports.SessionStore, source ports.LocationSource, cfg Config) *Reporter {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	notify := cfg.Notify
	if notify == nil {
		notify = func(bool) {}
	}
	clock := cfg.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Reporter{
		sender:   sender,
		sessions: sessions,
		source:   source,
		interval: interval,
		notify:   notify,
		clock:    clock,
	}
}

// Start moves the reporter from stopped to running. It is a no-op when
// already running and refuses to start while the location source is
// unavailable. The loop is detached from any caller context: it keeps
// reporting until Stop or an authentication failure.
func (r *Reporter) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return nil
	}
	if !r.source.Available() {
		return ErrLocationUnavailable
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done

	go r.run(ctx, done)
	r.notify(true)

	return nil
}

// Stop moves the reporter to stopped and waits for the loop to exit. Safe to
// call when already stopped.
func (r *Reporter) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	done := r.done
	r.cancel = nil
	r.done = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
	r.notify(false)
}

func (r *Reporter) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

// Done returns a channel closed when the current run loop exits, covering
// the autonomous-stop case. A stopped reporter returns a closed channel.
func (r *Reporter) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done != nil {
		return r.done
	}

	closed := make(chan struct{})
	close(closed)
	return closed
}

func (r *Reporter) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	// The sampling floor: never poll the source more often than half the
	// reporting interval, whatever the timer does.
	floor := r.interval / 2
	var lastSample time.Time

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		now := r.clock.Now()
		if lastSample.IsZero() || now.Sub(lastSample) >= floor {
			lastSample = now
			if r.tick(ctx) {
				r.selfStop()
				return
			}
		}

		timer.Reset(r.interval)
	}
}

// tick performs one report. It returns true only when the server rejected
// the session; every other failure is treated as transient and swallowed.
func (r *Reporter) tick(ctx context.Context) (authExpired bool) {
	if !r.sessions.HasToken(ctx) {
		// Logged out between ticks. Skip silently and keep running;
		// a fresh login resumes reporting without a restart.
		return false
	}

	sample, err := r.source.Sample(ctx)
	if err != nil {
		return false
	}

	err = r.sender.SendLocation(ctx, sample)
	if err == nil {
		return false
	}

	return errors.Is(err, domain.ErrSessionExpired)
}

// selfStop clears the running state from inside the loop. Exactly one of
// selfStop and Stop wins the cancel, so the notify fires once.
func (r *Reporter) selfStop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.done = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
		r.notify(false)
	}
}
