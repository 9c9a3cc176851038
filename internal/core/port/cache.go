package port

import (
	"context"

	"jobboard-ads/internal/core/domain"
)

// KeyValueStore is the device-local byte store backing the client cache.
// A missing key is reported with ok == false and a nil error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// CampaignCache persists the client's campaign collection.
type CampaignCache interface {
	Load(ctx context.Context) ([]domain.Campaign, error)
	Save(ctx context.Context, campaigns []domain.Campaign) error
}

// DraftCache persists the in-progress wizard state.
type DraftCache interface {
	// Load returns nil when no draft is saved.
	Load(ctx context.Context) (*domain.Draft, error)
	Save(ctx context.Context, d domain.Draft) error
	Clear(ctx context.Context) error
}
