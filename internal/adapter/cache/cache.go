// Package cache persists the client's campaigns and wizard draft in a
// key-value store. Values are JSON envelopes carrying a schema version so
// older layouts can be normalised on load.
package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobboard-ads/internal/core/budget"
	"jobboard-ads/internal/core/domain"
	"jobboard-ads/internal/core/port"
)

// SchemaVersion is the layout written by Save. Version 1 was a bare JSON
// array with free-form amounts and dates.
const SchemaVersion = 2

var (
	_ port.CampaignCache = (*CampaignCache)(nil)
	_ port.DraftCache    = (*DraftCache)(nil)
)

type envelope struct {
	Version   int               `json:"version"`
	SavedAt   time.Time         `json:"savedAt"`
	Campaigns []domain.Campaign `json:"campaigns"`
}

// CampaignCache stores one user's campaign collection under a single key.
type CampaignCache struct {
	kv  port.KeyValueStore
	key string
	now func() time.Time
}

// NewCampaignCache creates a cache scoped to userID.
func NewCampaignCache(kv port.KeyValueStore, userID string) *CampaignCache {
	return &CampaignCache{
		kv:  kv,
		key: "user:" + userID + ":campaigns",
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Load returns the cached campaigns, normalised to the current schema. A
// missing entry yields an empty collection.
func (c *CampaignCache) Load(ctx context.Context) ([]domain.Campaign, error) {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("read campaign cache: %w", err)
	}
	if !ok || len(bytes.TrimSpace([]byte(raw))) == 0 {
		return nil, nil
	}
	campaigns, err := decode([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("decode campaign cache: %w", err)
	}
	for i := range campaigns {
		campaigns[i] = normalize(campaigns[i])
	}
	return campaigns, nil
}

// Save replaces the cached collection.
func (c *CampaignCache) Save(ctx context.Context, campaigns []domain.Campaign) error {
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	data, err := json.Marshal(envelope{Version: SchemaVersion, SavedAt: c.now(), Campaigns: campaigns})
	if err != nil {
		return fmt.Errorf("encode campaign cache: %w", err)
	}
	if err = c.kv.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("write campaign cache: %w", err)
	}
	return nil
}

func decode(data []byte) ([]domain.Campaign, error) {
	data = bytes.TrimSpace(data)
	if data[0] == '[' {
		return decodeLegacy(data)
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	switch {
	case env.Version == SchemaVersion:
		return env.Campaigns, nil
	case env.Version > SchemaVersion:
		return nil, fmt.Errorf("cache schema version %d is newer than supported %d", env.Version, SchemaVersion)
	default:
		return nil, fmt.Errorf("unknown cache schema version %d", env.Version)
	}
}

// normalize repairs derived and legacy fields so every loaded campaign
// satisfies the current invariants.
func normalize(c domain.Campaign) domain.Campaign {
	if s, ok := domain.ParseStatus(string(c.Status)); ok {
		c.Status = s
	} else {
		c.Status = domain.StatusDraft
	}
	if c.ID == "" {
		c.ID = c.TempID
	}
	if c.ID == "" {
		c.ID = domain.NewTemporaryID()
	}
	if c.TempID == c.ID {
		c.TempID = ""
	}
	if b, err := budget.Normalize(c.Budget); err == nil {
		c.Budget = b
	}
	if c.Status == domain.StatusEnded {
		c.Archived = true
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	return c
}

// DraftCache stores one user's in-progress wizard state.
type DraftCache struct {
	kv  port.KeyValueStore
	key string
	now func() time.Time
}

// NewDraftCache creates a draft cache scoped to userID.
func NewDraftCache(kv port.KeyValueStore, userID string) *DraftCache {
	return &DraftCache{
		kv:  kv,
		key: "user:" + userID + ":draft",
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Load returns the saved draft or nil.
func (d *DraftCache) Load(ctx context.Context) (*domain.Draft, error) {
	raw, ok, err := d.kv.Get(ctx, d.key)
	if err != nil {
		return nil, fmt.Errorf("read draft cache: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var draft domain.Draft
	if err = json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("decode draft cache: %w", err)
	}
	return &draft, nil
}

// Save stores draft, stamping SavedAt when unset.
func (d *DraftCache) Save(ctx context.Context, draft domain.Draft) error {
	if draft.SavedAt.IsZero() {
		draft.SavedAt = d.now()
	}
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft cache: %w", err)
	}
	return d.kv.Set(ctx, d.key, string(data))
}

// Clear removes the saved draft.
func (d *DraftCache) Clear(ctx context.Context) error {
	return d.kv.Delete(ctx, d.key)
}
