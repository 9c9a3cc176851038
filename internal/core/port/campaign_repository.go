package port

import (
	"context"

	"jobboard-ads/internal/core/domain"
)

// CampaignRepository defines the persistence layer of the campaign API. It
// is an outbound port in hexagonal architecture. Every method is scoped to
// the user that owns the campaigns.
type CampaignRepository interface {
	// Create stores a new campaign owned by userID.
	Create(ctx context.Context, userID string, c domain.Campaign) error
	// Get returns the campaign with the given id, or nil when it does not
	// exist or belongs to another user.
	Get(ctx context.Context, userID, id string) (*domain.Campaign, error)
	// GetByTempID returns the campaign a client created under tempID, or
	// nil. It lets a retried create return the first result.
	GetByTempID(ctx context.Context, userID, tempID string) (*domain.Campaign, error)
	// Update replaces the stored campaign. It returns domain.ErrNotFound
	// when no row owned by userID matched.
	Update(ctx context.Context, userID string, c domain.Campaign) error
	// ListByUser returns every campaign owned by userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Campaign, error)
}
