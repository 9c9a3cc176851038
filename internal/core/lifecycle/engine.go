// Package lifecycle implements the campaign state machine:
//
//	draft -> review -> awaiting_payment -> active <-> paused -> ended
//
// review skips awaiting_payment when nothing is owed, and any status but
// ended may be terminated. The engine is pure: it returns updated copies
// and never mutates its input.
package lifecycle

import (
	"math/rand/v2"
	"time"

	"jobboard-ads/internal/core/budget"
	"jobboard-ads/internal/core/domain"
)

// DelayFunc picks the review window length within [min, max].
type DelayFunc func(min, max time.Duration) time.Duration

// Engine applies lifecycle events to campaigns.
type Engine struct {
	minDelay time.Duration
	maxDelay time.Duration
	delay    DelayFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithDelayFunc replaces the random review window picker.
func WithDelayFunc(f DelayFunc) Option {
	return func(e *Engine) {
		e.delay = f
	}
}

// WithFixedDelay makes every review window exactly d long.
func WithFixedDelay(d time.Duration) Option {
	return WithDelayFunc(func(time.Duration, time.Duration) time.Duration { return d })
}

// NewEngine creates an engine whose review windows are drawn uniformly
// from [minDelay, maxDelay].
func NewEngine(minDelay, maxDelay time.Duration, opts ...Option) *Engine {
	if minDelay < 0 {
		minDelay = 0
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	e := &Engine{minDelay: minDelay, maxDelay: maxDelay, delay: randomDelay}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func randomDelay(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int64N(int64(max-min)+1))
}

// Apply fires ev on c at now. An event that is not legal for the current
// status yields an InvalidTransitionError and a zero Campaign; a failed
// launch guard yields the ValidationError of the offending field.
func (e *Engine) Apply(c domain.Campaign, ev domain.Event, now time.Time) (domain.Campaign, error) {
	if c.Status.Terminal() || !ev.Valid() {
		return domain.Campaign{}, invalid(c, ev)
	}
	next := c.Clone()
	switch ev {
	case domain.EventLaunch:
		if c.Status != domain.StatusDraft {
			return domain.Campaign{}, invalid(c, ev)
		}
		if err := c.ValidateLaunch(now); err != nil {
			return domain.Campaign{}, err
		}
		b, err := budget.Normalize(c.Budget)
		if err != nil {
			return domain.Campaign{}, err
		}
		next.Budget = b
		if next.Payment.Amount == 0 {
			next.Payment.Amount = b.Total
		}
		next.Status = domain.StatusReview
		next.Review = domain.Review{
			StartedAt: now,
			EndsAt:    now.Add(e.delay(e.minDelay, e.maxDelay)),
		}

	case domain.EventReviewWindowElapsed:
		if c.Status != domain.StatusReview || now.Before(c.Review.EndsAt) {
			return domain.Campaign{}, invalid(c, ev)
		}
		if c.Payment.Required() {
			next.Status = domain.StatusAwaitingPayment
			next.Payment.Status = domain.PaymentPending
		} else {
			next.Status = domain.StatusActive
		}

	case domain.EventPaymentConfirmed:
		if c.Status != domain.StatusAwaitingPayment {
			return domain.Campaign{}, invalid(c, ev)
		}
		next.Status = domain.StatusActive
		next.Payment.Status = domain.PaymentPaid

	case domain.EventPause:
		if c.Status != domain.StatusActive {
			return domain.Campaign{}, invalid(c, ev)
		}
		next.Status = domain.StatusPaused

	case domain.EventResume:
		if c.Status != domain.StatusPaused {
			return domain.Campaign{}, invalid(c, ev)
		}
		next.Status = domain.StatusActive

	case domain.EventTerminate:
		next.Status = domain.StatusEnded
		next.Archived = true
		endedAt := now
		next.EndedAt = &endedAt
	}
	next.UpdatedAt = now
	return next, nil
}

// Tick applies the time-driven transition that is due at now, if any. It
// applies at most one transition per call and reports whether c changed.
// Calling Tick again with the same now is a no-op.
func (e *Engine) Tick(c domain.Campaign, now time.Time) (domain.Campaign, bool) {
	if c.Status != domain.StatusReview || c.Review.EndsAt.IsZero() || now.Before(c.Review.EndsAt) {
		return c, false
	}
	next, err := e.Apply(c, domain.EventReviewWindowElapsed, now)
	if err != nil {
		return c, false
	}
	return next, true
}

// EventFor returns the event that moves a campaign from one status to
// another, if the transition exists.
func EventFor(from, to domain.Status) (domain.Event, bool) {
	if from.Terminal() || !from.Valid() {
		return "", false
	}
	switch {
	case to == domain.StatusEnded:
		return domain.EventTerminate, true
	case from == domain.StatusDraft && to == domain.StatusReview:
		return domain.EventLaunch, true
	case from == domain.StatusReview && (to == domain.StatusAwaitingPayment || to == domain.StatusActive):
		return domain.EventReviewWindowElapsed, true
	case from == domain.StatusAwaitingPayment && to == domain.StatusActive:
		return domain.EventPaymentConfirmed, true
	case from == domain.StatusActive && to == domain.StatusPaused:
		return domain.EventPause, true
	case from == domain.StatusPaused && to == domain.StatusActive:
		return domain.EventResume, true
	default:
		return "", false
	}
}

// Rank orders statuses along the lifecycle. Active and paused share a rank
// since a campaign moves freely between them.
func Rank(s domain.Status) int {
	switch s {
	case domain.StatusDraft:
		return 0
	case domain.StatusReview:
		return 1
	case domain.StatusAwaitingPayment:
		return 2
	case domain.StatusActive, domain.StatusPaused:
		return 3
	case domain.StatusEnded:
		return 4
	default:
		return -1
	}
}

func invalid(c domain.Campaign, ev domain.Event) error {
	return &domain.InvalidTransitionError{State: c.Status, Event: ev}
}
