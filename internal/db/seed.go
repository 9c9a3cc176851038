package db

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard-ads/internal/core/domain"
	"jobboard-ads/internal/core/port"
)

// Seed inserts one demo campaign per lifecycle status for userID through
// repo, plus impressions and clicks for the ones that ran.
func Seed(ctx context.Context, pool *pgxpool.Pool, repo port.CampaignRepository, userID string) error {
	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	now := time.Now().UTC().Truncate(time.Second)
	today := domain.TruncateDay(now)

	statuses := []domain.Status{
		domain.StatusReview,
		domain.StatusAwaitingPayment,
		domain.StatusActive,
		domain.StatusPaused,
		domain.StatusEnded,
	}
	objectives := []domain.Objective{
		domain.ObjectiveViews, domain.ObjectiveMessages, domain.ObjectiveLink, domain.ObjectiveFollowers,
	}
	cities := []string{"Douala", "Yaoundé", "Bafoussam", "Garoua"}

	for i, status := range statuses {
		total := int64(10000 * (i + 1))
		days := 3 + r.IntN(10)
		c := domain.Campaign{
			ID:        uuid.NewString(),
			OwnerID:   userID,
			OwnerType: domain.OwnerProfile,
			Creative: domain.Creative{
				Text: fmt.Sprintf("Demo job offer %d", i+1),
				Link: fmt.Sprintf("https://example.com/jobs/%d", i+1),
				Media: []domain.Media{{
					URL:  fmt.Sprintf("https://example.com/media/%d.jpg", i+1),
					Type: domain.MediaImage,
				}},
			},
			Objective: objectives[r.IntN(len(objectives))],
			Audience:  domain.Audience{Country: "CM", City: cities[r.IntN(len(cities))]},
			Budget: domain.Budget{
				Total:        total,
				StartDate:    today,
				EndDate:      today.AddDate(0, 0, days-1),
				DurationDays: days,
			},
			Status:    status,
			Review:    domain.Review{StartedAt: now.Add(-time.Hour), EndsAt: now.Add(time.Duration(i+1) * 30 * time.Minute)},
			Payment:   domain.Payment{Amount: total, Currency: "XAF"},
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
			UpdatedAt: now,
		}
		switch status {
		case domain.StatusAwaitingPayment:
			c.Payment.Status = domain.PaymentPending
		case domain.StatusActive, domain.StatusPaused:
			c.Payment.Status = domain.PaymentPaid
		case domain.StatusEnded:
			c.Payment.Status = domain.PaymentPaid
			c.Archived = true
			c.EndedAt = &now
		}
		if err := repo.Create(ctx, userID, c); err != nil {
			return fmt.Errorf("seed campaign %d: %w", i+1, err)
		}

		if status == domain.StatusActive || status == domain.StatusPaused || status == domain.StatusEnded {
			if err := seedEvents(ctx, pool, r, c.ID, 50+r.IntN(200)); err != nil {
				return err
			}
		}
	}
	return nil
}

// seedEvents records impressions for a campaign and a click for roughly one
// in ten of them.
func seedEvents(ctx context.Context, pool *pgxpool.Pool, r *rand.Rand, campaignID string, impressions int) error {
	for i := 0; i < impressions; i++ {
		viewer := fmt.Sprintf("viewer-%d", r.IntN(100)+1)
		var impID int64
		err := pool.QueryRow(ctx, `INSERT INTO impressions (token, campaign_id, user_id, created_at)
VALUES ($1,$2,$3,now()) RETURNING id`, uuid.NewString(), campaignID, viewer).Scan(&impID)
		if err != nil {
			return fmt.Errorf("seed impression: %w", err)
		}
		if r.IntN(10) != 0 {
			continue
		}
		_, err = pool.Exec(ctx, `INSERT INTO clicks (token, impression_id, campaign_id, user_id, created_at)
VALUES ($1,$2,$3,$4,now())`, uuid.NewString(), impID, campaignID, viewer)
		if err != nil {
			return fmt.Errorf("seed click: %w", err)
		}
	}
	return nil
}
