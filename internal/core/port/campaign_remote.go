package port

import (
	"context"

	"jobboard-ads/internal/core/domain"
)

// CampaignRemote is the client's view of the campaign API. Transport
// failures are reported as *domain.RemoteUnavailableError and a missing
// credential as domain.ErrUnauthenticated; callers test the returned error
// and degrade to their local copy.
type CampaignRemote interface {
	// Create persists a launched campaign and returns the server's record.
	Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error)
	// UpdateStatus asks the server to move campaign id to status.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusReq) (domain.Campaign, error)
	// FetchOne returns one campaign or domain.ErrNotFound.
	FetchOne(ctx context.Context, id string) (domain.Campaign, error)
	// FetchMine returns every campaign of the authenticated user.
	FetchMine(ctx context.Context) ([]domain.Campaign, error)
}
