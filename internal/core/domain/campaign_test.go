package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func validCampaign() Campaign {
	return Campaign{
		ID:        "local-1",
		Status:    StatusDraft,
		Objective: ObjectiveViews,
		Audience:  Audience{Country: "CM", AgeMin: intPtr(18), AgeMax: intPtr(40)},
		Budget: Budget{
			Total:     50000,
			StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func requireField(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
	assert.Equal(t, field, vErr.Field)
}

// TestAudienceAgeBelowPlatformMinimum rejects an audience of 10 to 30 year olds.
func TestAudienceAgeBelowPlatformMinimum(t *testing.T) {
	a := Audience{AgeMin: intPtr(10), AgeMax: intPtr(30)}
	requireField(t, a.Validate(), "audience.ageMin")
}

func TestAudienceAgeOrder(t *testing.T) {
	a := Audience{Country: "CM", AgeMin: intPtr(40), AgeMax: intPtr(20)}
	requireField(t, a.Validate(), "audience.ageMin")
}

func TestAudienceAgeAboveMaximum(t *testing.T) {
	a := Audience{Country: "CM", AgeMax: intPtr(70)}
	requireField(t, a.Validate(), "audience.ageMax")
}

func TestAudienceRequiresCountry(t *testing.T) {
	requireField(t, Audience{City: "Douala"}.Validate(), "audience.country")
}

func TestBudgetValidation(t *testing.T) {
	start := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name   string
		budget Budget
		field  string
	}{
		{"missing total", Budget{StartDate: start, EndDate: start}, "budget.total"},
		{"daily above total", Budget{Total: 10, Daily: 11, StartDate: start, EndDate: start}, "budget.daily"},
		{"missing start", Budget{Total: 10, EndDate: start}, "budget.startDate"},
		{"missing end", Budget{Total: 10, StartDate: start}, "budget.endDate"},
		{"start in past", Budget{Total: 10, StartDate: start.AddDate(0, 0, -5), EndDate: start}, "budget.startDate"},
		{"end before start", Budget{Total: 10, StartDate: start, EndDate: start.AddDate(0, 0, -1)}, "budget.endDate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireField(t, tc.budget.Validate(now), tc.field)
		})
	}
}

func TestBudgetStartTodayIsValid(t *testing.T) {
	b := Budget{Total: 10, StartDate: now, EndDate: now}
	assert.NoError(t, b.Validate(now.Add(10*time.Hour)))
}

func TestCampaignValidateSkipsUnfilledSteps(t *testing.T) {
	c := Campaign{ID: "local-1", Status: StatusDraft, Creative: Creative{Text: "hiring"}}
	assert.NoError(t, c.Validate(now))
}

func TestCampaignValidateStartDateAfterLaunch(t *testing.T) {
	later := now.AddDate(0, 0, 3)

	draft := validCampaign()
	requireField(t, draft.Validate(later), "budget.startDate")

	running := validCampaign()
	running.Status = StatusActive
	running.Review = Review{StartedAt: now, EndsAt: now.Add(time.Hour)}
	assert.NoError(t, running.Validate(later))

	launchedLate := running
	launchedLate.Review.StartedAt = now.AddDate(0, 0, 1)
	requireField(t, launchedLate.Validate(later), "budget.startDate")

	noReview := validCampaign()
	noReview.Status = StatusPaused
	assert.NoError(t, noReview.Validate(later))

	backwards := running
	backwards.Budget.EndDate = now.AddDate(0, 0, -1)
	requireField(t, backwards.Validate(later), "budget.endDate")
}

func TestCampaignValidateLaunchGuard(t *testing.T) {
	c := validCampaign()
	require.NoError(t, c.ValidateLaunch(now))

	noObjective := validCampaign()
	noObjective.Objective = ""
	requireField(t, noObjective.ValidateLaunch(now), "objective")

	noCountry := validCampaign()
	noCountry.Audience.Country = ""
	requireField(t, noCountry.ValidateLaunch(now), "audience.country")

	noBudget := validCampaign()
	noBudget.Budget = Budget{}
	requireField(t, noBudget.ValidateLaunch(now), "budget.total")
}

func TestCampaignValidateRejectsUnknownObjective(t *testing.T) {
	c := validCampaign()
	c.Objective = "sales"
	requireField(t, c.Validate(now), "objective")
}

func TestCampaignValidateMediaURL(t *testing.T) {
	c := validCampaign()
	c.Creative.Media = []Media{{URL: "https://cdn/x.png", Type: MediaImage}, {Type: MediaVideo}}
	requireField(t, c.Validate(now), "creative.media.1.url")
}

func TestCampaignIdentity(t *testing.T) {
	local := Campaign{ID: "local-123"}
	assert.Equal(t, "local-123", local.Identity())
	assert.Equal(t, []string{"local-123"}, local.Keys())

	confirmed := Campaign{ID: "abc", TempID: "local-123"}
	assert.Equal(t, "abc", confirmed.Identity())
	assert.Equal(t, []string{"abc", "local-123"}, confirmed.Keys())
	assert.True(t, confirmed.HasKey("local-123"))
	assert.False(t, confirmed.HasKey(""))
}

func TestTemporaryID(t *testing.T) {
	id := NewTemporaryID()
	assert.True(t, IsTemporaryID(id))
	assert.False(t, IsTemporaryID("6f1c1d0e-5a43-4d0b-9b7e-1f1e9c1d2a3b"))
}

func TestCloneDoesNotShareState(t *testing.T) {
	c := validCampaign()
	c.Creative.Media = []Media{{URL: "a"}}
	cp := c.Clone()
	cp.Creative.Media[0].URL = "b"
	*cp.Audience.AgeMin = 30
	assert.Equal(t, "a", c.Creative.Media[0].URL)
	assert.Equal(t, 18, *c.Audience.AgeMin)
}

func TestParseStatusLegacyLabels(t *testing.T) {
	cases := map[string]Status{
		"pending":          StatusReview,
		"In-Review":        StatusReview,
		"awaiting_payment": StatusAwaitingPayment,
		"completed":        StatusEnded,
		"active":           StatusActive,
	}
	for in, want := range cases {
		got, ok := ParseStatus(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseStatus("bogus")
	assert.False(t, ok)
}

func TestDraftValidate(t *testing.T) {
	requireField(t, Draft{Mode: DraftFromPost}.Validate(now), "postId")
	requireField(t, Draft{Mode: DraftInline}.Validate(now), "creative")
	requireField(t, Draft{}.Validate(now), "mode")
	assert.NoError(t, Draft{Mode: DraftFromPost, PostID: "p1", Objective: ObjectiveLink}.Validate(now))
}

func TestPaymentRequired(t *testing.T) {
	assert.False(t, Payment{}.Required())
	assert.True(t, Payment{Amount: 100}.Required())
	assert.False(t, Payment{Amount: 100, Status: PaymentPaid}.Required())
}
