package store

import (
	"context"
	"time"

	"jobboard-ads/internal/core/domain"
)

// scheduleReview arms a one-shot timer that ends the review window of c.
// Reads already apply the transition through tick, so the timer only saves
// the new status early and tells the server. It is best effort: a closed
// store or a removed campaign makes it a no-op. Callers hold s.mu.
func (s *Store) scheduleReview(c domain.Campaign) {
	key := c.TempID
	if key == "" {
		key = c.ID
	}
	if c.Status != domain.StatusReview || c.Review.EndsAt.IsZero() || key == "" {
		return
	}
	if _, ok := s.timers[key]; ok {
		return
	}
	d := c.Review.EndsAt.Sub(s.now())
	if d < 0 {
		d = 0
	}
	s.timers[key] = time.AfterFunc(d, func() {
		s.reviewElapsed(key)
	})
}

// stopTimers cancels the timer armed for any id of c. Callers hold s.mu.
func (s *Store) stopTimers(c domain.Campaign) {
	for _, k := range c.Keys() {
		if t, ok := s.timers[k]; ok {
			t.Stop()
			delete(s.timers, k)
		}
	}
}

func (s *Store) reviewElapsed(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	s.mu.Lock()
	if _, ok := s.timers[key]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.timers, key)

	i := s.indexOf(key)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	next, changed := s.tick(s.items[i])
	if !changed {
		// Fired early relative to the store clock; try again at EndsAt.
		s.scheduleReview(next)
		s.mu.Unlock()
		return
	}
	s.items[i] = next
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("persist reviewed campaign", "campaign_id", next.Identity(), "error", err)
		return
	}

	if next.Confirmed() {
		s.pushStatus(ctx, next)
	}
}
