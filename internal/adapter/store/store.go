// Package store keeps the client's single view of its campaigns. It is the
// only component that writes the campaign cache: local edits, lifecycle
// events and server responses are all folded in here, field by field, and
// every record goes through the lifecycle tick before it is returned or
// persisted.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"jobboard-ads/internal/core/budget"
	"jobboard-ads/internal/core/domain"
	"jobboard-ads/internal/core/lifecycle"
	"jobboard-ads/internal/core/port"
	"jobboard-ads/internal/metrics"
)

const side = "client"

// Store is the reconciliation store for one user's campaigns.
type Store struct {
	mu     sync.Mutex
	items  []domain.Campaign
	timers map[string]*time.Timer

	cache  port.CampaignCache
	drafts port.DraftCache
	remote port.CampaignRemote
	engine *lifecycle.Engine

	userID  string
	logger  *slog.Logger
	now     func() time.Time
	timeout time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger used for degraded remote calls.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithRemoteTimeout bounds remote calls issued from review timers.
func WithRemoteTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.timeout = d
	}
}

// New creates an empty store. Call Load to read the cache.
func New(
	cache port.CampaignCache,
	drafts port.DraftCache,
	remote port.CampaignRemote,
	engine *lifecycle.Engine,
	userID string,
	opts ...Option,
) *Store {
	s := &Store{
		timers:  make(map[string]*time.Timer),
		cache:   cache,
		drafts:  drafts,
		remote:  remote,
		engine:  engine,
		userID:  userID,
		logger:  slog.Default(),
		now:     func() time.Time { return time.Now().UTC() },
		timeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CampaignPatch is a partial edit of a draft campaign. Nil fields are left
// untouched.
type CampaignPatch struct {
	PostID    *string
	Creative  *domain.Creative
	Objective *domain.Objective
	Audience  *domain.Audience
	Budget    *domain.Budget
	Payment   *domain.Payment
}

// SyncReport summarises one Sync pass.
type SyncReport struct {
	// Created counts campaigns the server acknowledged during this pass.
	Created int
	// Pushed counts status changes sent because the local copy was ahead.
	Pushed int
	// Merged counts campaigns that had both a local and a remote copy.
	Merged int
	// RemoteErr is set when the server could not be reached. The local
	// collection is still valid.
	RemoteErr error
}

// Load reads the cached collection, folds duplicate records together and
// applies any due transition.
func (s *Store) Load(ctx context.Context) error {
	cached, err := s.cache.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.Campaign, 0, len(cached))
	for _, group := range Identify(cached) {
		merged := group[0]
		for _, r := range group[1:] {
			merged = overlay(merged, r)
		}
		merged, _ = s.tick(merged)
		items = append(items, merged)
	}
	sortCampaigns(items)
	s.items = items

	for _, c := range s.items {
		s.scheduleReview(c)
	}
	return s.persist(ctx)
}

// List returns every campaign, newest first.
func (s *Store) List(ctx context.Context) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tickAll(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, len(s.items))
	for i := range s.items {
		out[i] = s.items[i].Clone()
	}
	return out, nil
}

// Get returns the campaign known by id, which may be either its server id
// or its temporary id.
func (s *Store) Get(ctx context.Context, id string) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tickAll(ctx); err != nil {
		return domain.Campaign{}, err
	}
	i := s.indexOf(id)
	if i < 0 {
		return domain.Campaign{}, domain.ErrNotFound
	}
	return s.items[i].Clone(), nil
}

// Upsert inserts c or folds it into the record sharing one of its ids.
// Fields c leaves empty keep their stored value and the status never moves
// backwards.
func (s *Store) Upsert(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, merged := s.fold(c)
	if err := merged.Validate(s.now()); err != nil {
		return domain.Campaign{}, err
	}
	out := s.commit(idx, merged)
	if err := s.persist(ctx); err != nil {
		return domain.Campaign{}, err
	}
	return out.Clone(), nil
}

// SaveDraft validates and stores the wizard state.
func (s *Store) SaveDraft(ctx context.Context, d domain.Draft) error {
	if err := d.Validate(s.now()); err != nil {
		return err
	}
	return s.drafts.Save(ctx, d)
}

// LoadDraft returns the saved wizard state or nil.
func (s *Store) LoadDraft(ctx context.Context) (*domain.Draft, error) {
	return s.drafts.Load(ctx)
}

// CreateFromDraft turns the saved wizard state into a draft campaign with a
// temporary id and clears the draft.
func (s *Store) CreateFromDraft(ctx context.Context) (domain.Campaign, error) {
	d, err := s.drafts.Load(ctx)
	if err != nil {
		return domain.Campaign{}, err
	}
	if d == nil {
		return domain.Campaign{}, fmt.Errorf("no saved draft: %w", domain.ErrNotFound)
	}
	now := s.now()
	if err = d.Validate(now); err != nil {
		return domain.Campaign{}, err
	}

	c := d.Campaign()
	c.ID = domain.NewTemporaryID()
	c.OwnerID = s.userID
	if d.PageID != "" {
		c.OwnerID = d.PageID
	}
	c.Status = domain.StatusDraft
	c.CreatedAt = now
	c.UpdatedAt = now
	if !c.Budget.IsZero() {
		if c.Budget, err = budget.Normalize(c.Budget); err != nil {
			return domain.Campaign{}, err
		}
	}

	s.mu.Lock()
	s.items = append(s.items, c)
	sortCampaigns(s.items)
	err = s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return domain.Campaign{}, err
	}

	if err = s.drafts.Clear(ctx); err != nil {
		return domain.Campaign{}, err
	}
	return c.Clone(), nil
}

// Update applies patch to a draft campaign. Launched campaigns are not
// editable.
func (s *Store) Update(ctx context.Context, id string, patch CampaignPatch) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Campaign{}, domain.ErrNotFound
	}
	c := s.items[i].Clone()
	if !c.Editable() {
		return domain.Campaign{}, domain.ErrNotEditable
	}

	if patch.PostID != nil {
		c.PostID = *patch.PostID
	}
	if patch.Creative != nil {
		c.Creative = *patch.Creative
	}
	if patch.Objective != nil {
		c.Objective = *patch.Objective
	}
	if patch.Audience != nil {
		c.Audience = *patch.Audience
	}
	if patch.Budget != nil {
		c.Budget = *patch.Budget
	}
	if patch.Payment != nil {
		c.Payment = *patch.Payment
	}
	c = c.Clone()

	now := s.now()
	if err := c.Validate(now); err != nil {
		return domain.Campaign{}, err
	}
	if !c.Budget.IsZero() {
		b, err := budget.Normalize(c.Budget)
		if err != nil {
			return domain.Campaign{}, err
		}
		c.Budget = b
	}
	c.UpdatedAt = now

	s.items[i] = c
	if err := s.persist(ctx); err != nil {
		return domain.Campaign{}, err
	}
	return c.Clone(), nil
}

// Launch submits a draft for review, schedules the end of its review window
// and tries to create it on the server. A failed remote call leaves the
// campaign unconfirmed; Sync retries it later.
func (s *Store) Launch(ctx context.Context, id string) (domain.Campaign, error) {
	launched, err := s.transition(ctx, id, domain.EventLaunch)
	if err != nil {
		return domain.Campaign{}, err
	}
	if created, ok := s.pushCreate(ctx, launched); ok {
		return created, nil
	}
	return launched, nil
}

// Apply fires ev on the campaign known by id and forwards the new status
// to the server when the campaign is confirmed there.
func (s *Store) Apply(ctx context.Context, id string, ev domain.Event) (domain.Campaign, error) {
	if ev == domain.EventLaunch {
		return s.Launch(ctx, id)
	}
	next, err := s.transition(ctx, id, ev)
	if err != nil {
		return domain.Campaign{}, err
	}
	if !next.Confirmed() {
		return next, nil
	}
	if pushed, ok := s.pushStatus(ctx, next); ok {
		return pushed, nil
	}
	return next, nil
}

// Remove deletes a campaign from the local collection and cancels its
// pending review timer.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.stopTimers(s.items[i])
	s.items = append(s.items[:i], s.items[i+1:]...)
	return s.persist(ctx)
}

// Refresh fetches one campaign from the server and folds it into the local
// copy. When the server cannot be reached the local copy is returned.
func (s *Store) Refresh(ctx context.Context, id string) (domain.Campaign, error) {
	local, err := s.Get(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	if local.ID == "" || domain.IsTemporaryID(local.ID) {
		return local, nil
	}
	remote, err := s.remote.FetchOne(ctx, local.ID)
	if err != nil {
		s.degraded("fetch_one", local.Identity(), err)
		return local, nil
	}
	if merged, ok := s.absorb(ctx, local.Identity(), remote); ok {
		return merged, nil
	}
	return local, nil
}

// Sync retries the creation of launched campaigns the server has not
// acknowledged, then merges the server's list into the local collection.
// Server failures are reported in SyncReport.RemoteErr; only cache failures
// are returned as errors.
func (s *Store) Sync(ctx context.Context) (SyncReport, error) {
	var report SyncReport

	for _, c := range s.pending() {
		if _, ok := s.pushCreate(ctx, c); ok {
			report.Created++
		}
	}

	remote, err := s.remote.FetchMine(ctx)
	if err != nil {
		s.degraded("fetch_mine", "", err)
		report.RemoteErr = err
		return report, nil
	}

	s.mu.Lock()
	localCount := len(s.items)
	all := make([]domain.Campaign, 0, localCount+len(remote))
	all = append(all, s.items...)
	all = append(all, remote...)

	var ahead []domain.Campaign
	items := make([]domain.Campaign, 0, len(all))
	for _, group := range identifyIndices(all) {
		var local, server *domain.Campaign
		for _, i := range group {
			r := all[i]
			switch {
			case i >= localCount && server == nil:
				server = &r
			case i >= localCount:
				*server = Merge(*server, r)
			case local == nil:
				local = &r
			default:
				*local = overlay(*local, r)
			}
		}

		var merged domain.Campaign
		switch {
		case local != nil && server != nil:
			merged = Merge(*local, *server)
			report.Merged++
		case server != nil:
			merged = *server
			if merged.TempID == merged.ID {
				merged.TempID = ""
			}
		default:
			merged = *local
		}
		merged, _ = s.tick(merged)
		if server != nil && merged.Confirmed() && lifecycle.Rank(merged.Status) > lifecycle.Rank(server.Status) {
			ahead = append(ahead, merged)
		}
		items = append(items, merged)
	}
	sortCampaigns(items)
	s.items = items
	for _, c := range s.items {
		s.scheduleReview(c)
	}
	err = s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return report, err
	}

	for _, c := range ahead {
		if _, ok := s.pushStatus(ctx, c); ok {
			report.Pushed++
		}
	}
	return report, nil
}

// Close cancels every pending review timer.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}

// transition applies ev locally and persists the result.
func (s *Store) transition(ctx context.Context, id string, ev domain.Event) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tickAll(ctx); err != nil {
		return domain.Campaign{}, err
	}
	i := s.indexOf(id)
	if i < 0 {
		return domain.Campaign{}, domain.ErrNotFound
	}
	prev := s.items[i]
	next, err := s.engine.Apply(prev, ev, s.now())
	if err != nil {
		return domain.Campaign{}, err
	}
	metrics.Transition(prev.Status, next.Status, side)

	s.items[i] = next
	if err = s.persist(ctx); err != nil {
		return domain.Campaign{}, err
	}
	if next.Status == domain.StatusEnded {
		s.stopTimers(next)
	} else {
		s.scheduleReview(next)
	}
	return next.Clone(), nil
}

// pushCreate sends a launched campaign to the server and folds the
// response in. It reports whether the server acknowledged it.
func (s *Store) pushCreate(ctx context.Context, c domain.Campaign) (domain.Campaign, bool) {
	created, err := s.remote.Create(ctx, c)
	if err != nil {
		s.degraded("create", c.Identity(), err)
		return domain.Campaign{}, false
	}
	return s.absorb(ctx, c.Identity(), created)
}

// pushStatus sends the campaign's current status to the server.
func (s *Store) pushStatus(ctx context.Context, c domain.Campaign) (domain.Campaign, bool) {
	req := port.UpdateStatusReq{Status: c.Status}
	if !c.Review.IsZero() {
		review := c.Review
		req.Review = &review
	}
	if c.Payment != (domain.Payment{}) {
		payment := c.Clone().Payment
		req.Payment = &payment
	}
	updated, err := s.remote.UpdateStatus(ctx, c.ID, req)
	if err != nil {
		s.degraded("update_status", c.Identity(), err)
		return domain.Campaign{}, false
	}
	return s.absorb(ctx, c.Identity(), updated)
}

// absorb merges a server record into the local record known by key. A
// record removed in the meantime is not brought back.
func (s *Store) absorb(ctx context.Context, key string, remote domain.Campaign) (domain.Campaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(key)
	if i < 0 {
		return domain.Campaign{}, false
	}
	merged, _ := s.tick(Merge(s.items[i], remote))
	s.items[i] = merged
	sortCampaigns(s.items)
	if err := s.persist(ctx); err != nil {
		s.logger.Error("persist merged campaign", slog.String("campaign_id", merged.Identity()), slog.Any("error", err))
	}
	return merged.Clone(), true
}

// pending returns launched campaigns the server has never acknowledged.
func (s *Store) pending() []domain.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Campaign
	for _, c := range s.items {
		if !c.Confirmed() && c.Status != domain.StatusDraft && c.Status != domain.StatusEnded {
			out = append(out, c.Clone())
		}
	}
	return out
}

// fold computes the record c becomes once merged into the stored record
// sharing one of its ids. idx is -1 for a new record. Nothing is stored.
func (s *Store) fold(c domain.Campaign) (int, domain.Campaign) {
	c = c.Clone()
	if c.Identity() == "" {
		c.ID = domain.NewTemporaryID()
	}
	now := s.now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	idx := -1
	for _, k := range c.Keys() {
		if idx = s.indexOf(k); idx >= 0 {
			break
		}
	}
	if idx < 0 {
		if c.Status == "" {
			c.Status = domain.StatusDraft
		}
		return idx, c
	}

	prev := s.items[idx]
	merged := overlay(prev, c)
	if lifecycle.Rank(c.Status) < lifecycle.Rank(prev.Status) {
		merged.Status, merged.Archived, merged.EndedAt = prev.Status, prev.Archived, prev.EndedAt
	}
	return idx, merged
}

// commit stores a record produced by fold at idx, or appends it.
func (s *Store) commit(idx int, c domain.Campaign) domain.Campaign {
	if idx < 0 {
		c, _ = s.tick(c)
		s.items = append(s.items, c)
	} else {
		metrics.Transition(s.items[idx].Status, c.Status, side)
		c, _ = s.tick(c)
		s.items[idx] = c
	}
	sortCampaigns(s.items)
	s.scheduleReview(c)
	return c
}

func (s *Store) tick(c domain.Campaign) (domain.Campaign, bool) {
	next, changed := s.engine.Tick(c, s.now())
	if changed {
		metrics.Transition(c.Status, next.Status, side)
	}
	return next, changed
}

// tickAll applies due transitions to every record and persists when any
// record changed.
func (s *Store) tickAll(ctx context.Context) error {
	dirty := false
	for i := range s.items {
		next, changed := s.tick(s.items[i])
		if changed {
			s.items[i] = next
			dirty = true
		}
	}
	if !dirty {
		return nil
	}
	return s.persist(ctx)
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].HasKey(id) {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.cache.Save(ctx, s.items); err != nil {
		return fmt.Errorf("persist campaigns: %w", err)
	}
	return nil
}

func (s *Store) degraded(op, id string, err error) {
	metrics.SyncFailure(op)
	level := slog.LevelWarn
	if errors.Is(err, domain.ErrUnauthenticated) {
		level = slog.LevelInfo
	}
	s.logger.Log(context.Background(), level, "campaign sync degraded, keeping local copy",
		slog.String("op", op),
		slog.String("campaign_id", id),
		slog.Any("error", err),
	)
}
