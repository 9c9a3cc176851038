package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobboard-ads/internal/core/budget"
	"jobboard-ads/internal/core/domain"
	"jobboard-ads/internal/core/lifecycle"
	"jobboard-ads/internal/core/port"
	"jobboard-ads/internal/metrics"
)

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

const side = "server"

// CampaignUseCase provides the business logic behind the campaign API. It
// orchestrates the lifecycle engine and the repository; time-driven
// transitions are applied lazily whenever a campaign is read.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	engine *lifecycle.Engine
	now    func() time.Time
}

// NewCampaignUseCase creates a new usecase with the provided repository and
// lifecycle engine.
func NewCampaignUseCase(repo port.CampaignRepository, engine *lifecycle.Engine) *CampaignUseCase {
	return &CampaignUseCase{
		repo:   repo,
		engine: engine,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a launched campaign. A campaign submitted with its review
// window keeps it; one without is launched here. Retrying a create with a
// temporary id already seen returns the stored campaign.
func (u *CampaignUseCase) Create(ctx context.Context, p domain.Principal, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if !p.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if req.TempID != "" {
		existing, err := u.repo.GetByTempID(ctx, p.UserID, req.TempID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return u.refresh(ctx, p.UserID, *existing)
		}
	}

	now := u.now()
	c := domain.Campaign{
		ID:        uuid.NewString(),
		TempID:    req.TempID,
		OwnerID:   req.OwnerID,
		OwnerType: req.OwnerType,
		PostID:    req.PostID,
		Creative:  req.Creative,
		Objective: req.Objective,
		Audience:  req.Audience,
		Budget:    req.Budget,
		Status:    domain.StatusDraft,
		Payment:   req.Payment,
		CreatedAt: now,
		UpdatedAt: now,
	}.Clone()
	if c.OwnerID == "" {
		c.OwnerID = p.UserID
	}
	if c.OwnerType == "" {
		c.OwnerType = domain.OwnerProfile
		if c.OwnerID != p.UserID {
			c.OwnerType = domain.OwnerPage
		}
	}
	c.Payment.Status = ""

	var err error
	if req.Review.IsZero() {
		if c, err = u.engine.Apply(c, domain.EventLaunch, now); err != nil {
			return nil, err
		}
	} else if c, err = launchedAt(c, req.Review); err != nil {
		return nil, err
	}
	metrics.Transition(domain.StatusDraft, c.Status, side)
	c, _ = u.tick(c, now)

	if err = u.repo.Create(ctx, p.UserID, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return &c, nil
}

// UpdateStatus moves a campaign to req.Status through the lifecycle engine.
// Asking for the current status is a no-op.
func (u *CampaignUseCase) UpdateStatus(ctx context.Context, p domain.Principal, id string, req port.UpdateStatusReq) (*domain.Campaign, error) {
	c, err := u.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if c.Status == req.Status {
		return c, nil
	}
	ev, ok := lifecycle.EventFor(c.Status, req.Status)
	if !ok {
		return nil, &domain.InvalidTransitionError{State: c.Status, Target: req.Status}
	}

	cur := *c
	if req.Payment != nil {
		cur.Payment.Currency = firstNonEmpty(req.Payment.Currency, cur.Payment.Currency)
		cur.Payment.Link = firstNonEmpty(req.Payment.Link, cur.Payment.Link)
		if req.Payment.EmailSentAt != nil {
			sent := *req.Payment.EmailSentAt
			cur.Payment.EmailSentAt = &sent
		}
	}

	next, err := u.engine.Apply(cur, ev, u.now())
	if err != nil {
		return nil, err
	}
	if err = u.repo.Update(ctx, p.UserID, next); err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	metrics.Transition(cur.Status, next.Status, side)
	return &next, nil
}

// Get returns one campaign owned by the caller.
func (u *CampaignUseCase) Get(ctx context.Context, p domain.Principal, id string) (*domain.Campaign, error) {
	if !p.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	c, err := u.repo.Get(ctx, p.UserID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return u.refresh(ctx, p.UserID, *c)
}

// ListMine returns the caller's campaigns, newest first.
func (u *CampaignUseCase) ListMine(ctx context.Context, p domain.Principal) ([]domain.Campaign, error) {
	if !p.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	items, err := u.repo.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		c, err := u.refresh(ctx, p.UserID, items[i])
		if err != nil {
			return nil, err
		}
		items[i] = *c
	}
	if items == nil {
		items = []domain.Campaign{}
	}
	return items, nil
}

// refresh applies a due time-driven transition and persists it.
func (u *CampaignUseCase) refresh(ctx context.Context, userID string, c domain.Campaign) (*domain.Campaign, error) {
	next, changed := u.tick(c, u.now())
	if changed {
		if err := u.repo.Update(ctx, userID, next); err != nil {
			return nil, fmt.Errorf("update campaign: %w", err)
		}
	}
	return &next, nil
}

func (u *CampaignUseCase) tick(c domain.Campaign, now time.Time) (domain.Campaign, bool) {
	next, changed := u.engine.Tick(c, now)
	if changed {
		metrics.Transition(c.Status, next.Status, side)
	}
	return next, changed
}

// launchedAt puts a campaign the client already launched into review with
// the client's window. Budget dates are checked against the launch day so
// a delayed upload is not rejected.
func launchedAt(c domain.Campaign, review domain.Review) (domain.Campaign, error) {
	if review.EndsAt.Before(review.StartedAt) {
		return domain.Campaign{}, domain.NewValidationError("review.endsAt", "must be >= review.startedAt")
	}
	if err := c.ValidateLaunch(review.StartedAt); err != nil {
		return domain.Campaign{}, err
	}
	b, err := budget.Normalize(c.Budget)
	if err != nil {
		return domain.Campaign{}, err
	}
	c.Budget = b
	if c.Payment.Amount == 0 {
		c.Payment.Amount = b.Total
	}
	c.Status = domain.StatusReview
	c.Review = review
	return c, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
