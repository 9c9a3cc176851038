package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard-ads/internal/core/domain"
	"jobboard-ads/internal/core/port"
)

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Nested value objects are stored as jsonb; targeting lives in
// its own table. Stats are counted from the impressions and clicks tables.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const selectCampaign = `
        SELECT
            c.id,
            c.temp_id,
            c.owner_id,
            c.owner_type,
            c.post_id,
            c.objective,
            c.status,
            c.creative,
            c.budget,
            c.payment,
            c.review_started_at,
            c.review_ends_at,
            c.archived,
            c.created_at,
            c.updated_at,
            c.ended_at,
            COALESCE(t.data, '{}'::jsonb),
            (SELECT count(*) FROM impressions i WHERE i.campaign_id = c.id),
            (SELECT count(*) FROM clicks k WHERE k.campaign_id = c.id)
        FROM campaigns c
        LEFT JOIN campaign_targeting t ON t.campaign_id = c.id`

// Create inserts the campaign and its targeting in one transaction.
func (r *CampaignRepository) Create(ctx context.Context, userID string, c domain.Campaign) (err error) {
	row, err := toRow(c)
	if err != nil {
		return err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO campaigns
    (id, user_id, temp_id, owner_id, owner_type, post_id, objective, status, creative, budget, payment,
     review_started_at, review_ends_at, archived, created_at, updated_at, ended_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		c.ID, userID, nullable(c.TempID), c.OwnerID, string(c.OwnerType), nullable(c.PostID), string(c.Objective), string(c.Status),
		row.creative, row.budget, row.payment, row.reviewStartedAt, row.reviewEndsAt,
		c.Archived, c.CreatedAt, c.UpdatedAt, c.EndedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	_, err = tx.Exec(ctx, `INSERT INTO campaign_targeting (campaign_id, data) VALUES ($1, $2)`, c.ID, row.audience)
	if err != nil {
		return fmt.Errorf("insert targeting: %w", err)
	}
	return tx.Commit(ctx)
}

// Get returns a campaign by id, or nil when userID does not own it.
func (r *CampaignRepository) Get(ctx context.Context, userID, id string) (*domain.Campaign, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	c, err := scanCampaign(r.pool.QueryRow(ctx, selectCampaign+` WHERE c.id = $1 AND c.user_id = $2`, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByTempID returns the campaign a client created under tempID.
func (r *CampaignRepository) GetByTempID(ctx context.Context, userID, tempID string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, selectCampaign+` WHERE c.temp_id = $1 AND c.user_id = $2`, tempID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update replaces the mutable columns of a campaign and its targeting.
func (r *CampaignRepository) Update(ctx context.Context, userID string, c domain.Campaign) (err error) {
	if _, err = uuid.Parse(c.ID); err != nil {
		return domain.ErrNotFound
	}
	row, err := toRow(c)
	if err != nil {
		return err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `UPDATE campaigns SET
    owner_id = $3, owner_type = $4, post_id = $5, objective = $6, status = $7,
    creative = $8, budget = $9, payment = $10, review_started_at = $11, review_ends_at = $12,
    archived = $13, updated_at = $14, ended_at = $15
WHERE id = $1 AND user_id = $2`,
		c.ID, userID, c.OwnerID, string(c.OwnerType), nullable(c.PostID), string(c.Objective), string(c.Status),
		row.creative, row.budget, row.payment, row.reviewStartedAt, row.reviewEndsAt,
		c.Archived, c.UpdatedAt, c.EndedAt)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	_, err = tx.Exec(ctx, `INSERT INTO campaign_targeting (campaign_id, data) VALUES ($1, $2)
ON CONFLICT (campaign_id) DO UPDATE SET data = EXCLUDED.data`, c.ID, row.audience)
	if err != nil {
		return fmt.Errorf("update targeting: %w", err)
	}
	return tx.Commit(ctx)
}

// ListByUser returns every campaign owned by userID, newest first.
func (r *CampaignRepository) ListByUser(ctx context.Context, userID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, selectCampaign+` WHERE c.user_id = $1 ORDER BY c.created_at DESC, c.id`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// campaignRow holds the encoded jsonb and nullable columns of a campaign.
type campaignRow struct {
	creative        []byte
	budget          []byte
	payment         []byte
	audience        []byte
	reviewStartedAt *time.Time
	reviewEndsAt    *time.Time
}

func toRow(c domain.Campaign) (campaignRow, error) {
	var (
		row campaignRow
		err error
	)
	if row.creative, err = json.Marshal(c.Creative); err != nil {
		return row, fmt.Errorf("encode creative: %w", err)
	}
	if row.budget, err = json.Marshal(c.Budget); err != nil {
		return row, fmt.Errorf("encode budget: %w", err)
	}
	if row.payment, err = json.Marshal(c.Payment); err != nil {
		return row, fmt.Errorf("encode payment: %w", err)
	}
	if row.audience, err = json.Marshal(c.Audience); err != nil {
		return row, fmt.Errorf("encode audience: %w", err)
	}
	if !c.Review.StartedAt.IsZero() {
		row.reviewStartedAt = &c.Review.StartedAt
	}
	if !c.Review.EndsAt.IsZero() {
		row.reviewEndsAt = &c.Review.EndsAt
	}
	return row, nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c                              domain.Campaign
		tempID, postID                 *string
		creative, budget, payment, tgt []byte
		reviewStartedAt, reviewEndsAt  *time.Time
	)
	err := row.Scan(
		&c.ID,
		&tempID,
		&c.OwnerID,
		&c.OwnerType,
		&postID,
		&c.Objective,
		&c.Status,
		&creative,
		&budget,
		&payment,
		&reviewStartedAt,
		&reviewEndsAt,
		&c.Archived,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.EndedAt,
		&tgt,
		&c.Stats.Impressions,
		&c.Stats.Clicks,
	)
	if err != nil {
		return domain.Campaign{}, err
	}
	if tempID != nil {
		c.TempID = *tempID
	}
	if postID != nil {
		c.PostID = *postID
	}
	if reviewStartedAt != nil {
		c.Review.StartedAt = reviewStartedAt.UTC()
	}
	if reviewEndsAt != nil {
		c.Review.EndsAt = reviewEndsAt.UTC()
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	for _, col := range []struct {
		src []byte
		dst any
	}{
		{creative, &c.Creative},
		{budget, &c.Budget},
		{payment, &c.Payment},
		{tgt, &c.Audience},
	} {
		if err = json.Unmarshal(col.src, col.dst); err != nil {
			return domain.Campaign{}, fmt.Errorf("decode campaign %s: %w", c.ID, err)
		}
	}
	return c, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
