package port

import (
	"context"

	"jobboard-ads/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the campaign
// API. Mock implementations can be generated from this interface for
// testing.
type CampaignUseCase interface {
	// Create stores a campaign submitted by a client and assigns it a
	// server id. The client's temporary id is echoed back in TempID.
	Create(ctx context.Context, p domain.Principal, req CreateCampaignReq) (*domain.Campaign, error)

	// UpdateStatus moves a campaign to the requested status through the
	// lifecycle engine. Illegal moves return an InvalidTransitionError.
	UpdateStatus(ctx context.Context, p domain.Principal, id string, req UpdateStatusReq) (*domain.Campaign, error)

	// Get returns one campaign after applying any due time-driven
	// transition.
	Get(ctx context.Context, p domain.Principal, id string) (*domain.Campaign, error)

	// ListMine returns the caller's campaigns, newest first.
	ListMine(ctx context.Context, p domain.Principal) ([]domain.Campaign, error)
}

// CreateCampaignReq is the body of POST /campaigns.
type CreateCampaignReq struct {
	TempID    string           `json:"tempId,omitempty" validate:"omitempty,max=64"`
	OwnerID   string           `json:"ownerId,omitempty" validate:"omitempty,max=64"`
	OwnerType domain.OwnerType `json:"ownerType,omitempty" validate:"omitempty,oneof=profile page"`
	PostID    string           `json:"postId,omitempty" validate:"omitempty,max=64"`
	Creative  domain.Creative  `json:"creative"`
	Objective domain.Objective `json:"objective" validate:"required,oneof=views messages link followers"`
	Audience  domain.Audience  `json:"audience"`
	Budget    domain.Budget    `json:"budget"`
	Review    domain.Review    `json:"review"`
	Payment   domain.Payment   `json:"payment"`
}

// NewCreateCampaignReq builds the create body for a locally held campaign.
func NewCreateCampaignReq(c domain.Campaign) CreateCampaignReq {
	tempID := c.TempID
	if tempID == "" && domain.IsTemporaryID(c.ID) {
		tempID = c.ID
	}
	return CreateCampaignReq{
		TempID:    tempID,
		OwnerID:   c.OwnerID,
		OwnerType: c.OwnerType,
		PostID:    c.PostID,
		Creative:  c.Creative,
		Objective: c.Objective,
		Audience:  c.Audience,
		Budget:    c.Budget,
		Review:    c.Review,
		Payment:   c.Payment,
	}
}

// UpdateStatusReq is the body of PUT /campaigns/{id}/status.
type UpdateStatusReq struct {
	Status  domain.Status   `json:"status" validate:"required,oneof=draft review awaiting_payment active paused ended"`
	Review  *domain.Review  `json:"review,omitempty"`
	Payment *domain.Payment `json:"payment,omitempty"`
}
