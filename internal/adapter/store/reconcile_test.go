package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-ads/internal/core/domain"
)

var t0 = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

func TestIdentifyScenarioC(t *testing.T) {
	local := domain.Campaign{ID: "local-123", Status: domain.StatusReview, CreatedAt: t0, UpdatedAt: t0}
	remote := domain.Campaign{
		ID:        "abc",
		TempID:    "local-123",
		OwnerType: domain.OwnerProfile,
		Status:    domain.StatusReview,
		CreatedAt: t0.Add(time.Second),
		UpdatedAt: t0.Add(time.Second),
	}

	groups := Identify([]domain.Campaign{local, remote})
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 2)

	merged := Merge(groups[0][0], groups[0][1])
	assert.Equal(t, "abc", merged.ID)
	assert.Equal(t, "local-123", merged.TempID)
	assert.Equal(t, domain.OwnerProfile, merged.OwnerType)
	assert.True(t, merged.Confirmed())
	assert.Equal(t, t0, merged.CreatedAt)
}

func TestIdentifyGroupsTransitivelyAndKeepsOrder(t *testing.T) {
	records := []domain.Campaign{
		{ID: "local-2"},
		{ID: "local-1"},
		{ID: "abc"},
		{ID: "abc", TempID: "local-1"},
		{ID: "xyz"},
	}

	groups := Identify(records)
	require.Len(t, groups, 3)
	assert.Equal(t, []domain.Campaign{records[0]}, groups[0])
	assert.Equal(t, []domain.Campaign{records[1], records[2], records[3]}, groups[1])
	assert.Equal(t, []domain.Campaign{records[4]}, groups[2])

	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, len(records), total)
}

func TestIdentifyEmpty(t *testing.T) {
	assert.Empty(t, Identify(nil))
}

func TestMergeStatsAlwaysFromRemote(t *testing.T) {
	remote := domain.Campaign{ID: "abc", Status: domain.StatusActive, Stats: domain.Stats{Impressions: 10, Clicks: 1}}
	for _, stats := range []domain.Stats{{}, {Impressions: 999}, {Impressions: 1, Clicks: 50}} {
		for _, updated := range []time.Time{t0.Add(-time.Hour), t0, t0.Add(time.Hour)} {
			local := domain.Campaign{ID: "abc", Status: domain.StatusActive, Stats: stats, UpdatedAt: updated}
			assert.Equal(t, remote.Stats, Merge(local, remote).Stats)
		}
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	age := 25
	local := domain.Campaign{
		ID:        "local-1",
		Status:    domain.StatusReview,
		Audience:  domain.Audience{Country: "CM", City: "Yaoundé", AgeMin: &age},
		Budget:    domain.Budget{Total: 1000, DurationDays: 2},
		Creative:  domain.Creative{Text: "hiring", Media: []domain.Media{{URL: "https://cdn/a.png", Type: domain.MediaImage}}},
		CreatedAt: t0,
	}
	remote := domain.Campaign{
		ID:        "abc",
		TempID:    "local-1",
		OwnerType: domain.OwnerPage,
		Status:    domain.StatusAwaitingPayment,
		Audience:  domain.Audience{Country: "CM"},
		Payment:   domain.Payment{Amount: 1000, Status: domain.PaymentPending},
		Stats:     domain.Stats{Impressions: 3},
		CreatedAt: t0.Add(time.Second),
	}

	for name, localUpdated := range map[string]time.Time{
		"remote newer": t0,
		"local newer":  t0.Add(2 * time.Hour),
		"same instant": t0.Add(time.Hour),
	} {
		t.Run(name, func(t *testing.T) {
			l := local
			l.UpdatedAt = localUpdated
			r := remote
			r.UpdatedAt = t0.Add(time.Hour)

			once := Merge(l, r)
			assert.Equal(t, once, Merge(once, r))
		})
	}
}

func TestMergePreservesFieldsRemoteLacks(t *testing.T) {
	local := domain.Campaign{
		ID:        "abc",
		Status:    domain.StatusReview,
		Audience:  domain.Audience{Country: "CM", City: "Douala", District: "Akwa"},
		Budget:    domain.Budget{Total: 50000, Daily: 10000},
		UpdatedAt: t0,
	}
	remote := domain.Campaign{
		ID:        "abc",
		OwnerType: domain.OwnerProfile,
		Status:    domain.StatusReview,
		Audience:  domain.Audience{Country: "SN"},
		Budget:    domain.Budget{Total: 60000},
		UpdatedAt: t0.Add(time.Minute),
	}

	merged := Merge(local, remote)
	assert.Equal(t, "SN", merged.Audience.Country)
	assert.Equal(t, "Douala", merged.Audience.City)
	assert.Equal(t, "Akwa", merged.Audience.District)
	assert.Equal(t, int64(60000), merged.Budget.Total)
	assert.Equal(t, int64(10000), merged.Budget.Daily)
	assert.Equal(t, t0.Add(time.Minute), merged.UpdatedAt)
}

func TestMergeNewerLocalEditWins(t *testing.T) {
	local := domain.Campaign{ID: "abc", Status: domain.StatusDraft, Objective: domain.ObjectiveLink, UpdatedAt: t0.Add(time.Hour)}
	remote := domain.Campaign{ID: "abc", Status: domain.StatusDraft, Objective: domain.ObjectiveViews, UpdatedAt: t0}

	assert.Equal(t, domain.ObjectiveLink, Merge(local, remote).Objective)
}

func TestMergeStatusNeverRegresses(t *testing.T) {
	ended := t0.Add(time.Minute)
	tests := []struct {
		name   string
		local  domain.Campaign
		remote domain.Campaign
		want   domain.Status
	}{
		{
			name:   "stale server",
			local:  domain.Campaign{ID: "abc", Status: domain.StatusActive, UpdatedAt: t0},
			remote: domain.Campaign{ID: "abc", Status: domain.StatusReview, UpdatedAt: t0.Add(time.Hour)},
			want:   domain.StatusActive,
		},
		{
			name:   "server ended it",
			local:  domain.Campaign{ID: "abc", Status: domain.StatusPaused, UpdatedAt: t0.Add(time.Hour)},
			remote: domain.Campaign{ID: "abc", Status: domain.StatusEnded, Archived: true, EndedAt: &ended, UpdatedAt: t0},
			want:   domain.StatusEnded,
		},
		{
			name:   "same rank newer wins",
			local:  domain.Campaign{ID: "abc", Status: domain.StatusPaused, UpdatedAt: t0.Add(time.Hour)},
			remote: domain.Campaign{ID: "abc", Status: domain.StatusActive, UpdatedAt: t0},
			want:   domain.StatusPaused,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := Merge(tt.local, tt.remote)
			assert.Equal(t, tt.want, merged.Status)
			if tt.want == domain.StatusEnded {
				assert.True(t, merged.Archived)
				require.NotNil(t, merged.EndedAt)
				assert.Equal(t, ended, *merged.EndedAt)
			}
		})
	}
}

func TestMergePaymentStatusFromServer(t *testing.T) {
	local := domain.Campaign{ID: "abc", Status: domain.StatusActive, Payment: domain.Payment{Amount: 100, Status: domain.PaymentPending}, UpdatedAt: t0.Add(time.Hour)}
	remote := domain.Campaign{ID: "abc", Status: domain.StatusActive, Payment: domain.Payment{Status: domain.PaymentPaid}, UpdatedAt: t0}

	merged := Merge(local, remote)
	assert.Equal(t, domain.PaymentPaid, merged.Payment.Status)
	assert.Equal(t, int64(100), merged.Payment.Amount)
}

func TestMergePaymentStatusFromServerWhileLocalAhead(t *testing.T) {
	local := domain.Campaign{ID: "abc", Status: domain.StatusActive, Payment: domain.Payment{Amount: 100, Status: domain.PaymentPaid}, UpdatedAt: t0.Add(time.Hour)}
	remote := domain.Campaign{ID: "abc", Status: domain.StatusAwaitingPayment, Payment: domain.Payment{Amount: 100, Status: domain.PaymentPending}, UpdatedAt: t0}

	merged := Merge(local, remote)
	assert.Equal(t, domain.StatusActive, merged.Status)
	assert.Equal(t, domain.PaymentPending, merged.Payment.Status)

	remote.Payment.Status = ""
	assert.Equal(t, domain.PaymentPaid, Merge(local, remote).Payment.Status)
}

func TestOverlayKeepsServerID(t *testing.T) {
	stored := domain.Campaign{ID: "srv-1", TempID: "local-1", Objective: domain.ObjectiveViews}

	out := overlay(stored, domain.Campaign{ID: "local-1", Objective: domain.ObjectiveLink})
	assert.Equal(t, "srv-1", out.ID)
	assert.Equal(t, "local-1", out.TempID)
	assert.Equal(t, domain.ObjectiveLink, out.Objective)

	out = overlay(domain.Campaign{ID: "local-1"}, domain.Campaign{ID: "srv-1"})
	assert.Equal(t, "srv-1", out.ID)
	assert.Equal(t, "local-1", out.TempID)
}

func TestSortCampaigns(t *testing.T) {
	items := []domain.Campaign{
		{ID: "b", CreatedAt: t0},
		{ID: "c", CreatedAt: t0.Add(time.Hour)},
		{ID: "a", CreatedAt: t0},
	}
	sortCampaigns(items)

	var ids []string
	for _, c := range items {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}
