package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobboard-ads/internal/adapter/cache"
	"jobboard-ads/internal/adapter/kv"
	"jobboard-ads/internal/core/domain"
	"jobboard-ads/internal/core/lifecycle"
	"jobboard-ads/internal/core/port"
	"jobboard-ads/internal/core/port/mocks"
	"jobboard-ads/internal/logger"
)

const userID = "u1"

var errOffline = &domain.RemoteUnavailableError{Op: "create", Err: errors.New("connection refused")}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	store  *Store
	remote *mocks.MockCampaignRemote
	cache  *cache.CampaignCache
	drafts *cache.DraftCache
	clock  *clock
}

func newFixture(t *testing.T, delay time.Duration, realClock bool) *fixture {
	t.Helper()
	mem := kv.NewMemory(16 * 1024 * 1024)
	f := &fixture{
		remote: mocks.NewMockCampaignRemote(t),
		cache:  cache.NewCampaignCache(mem, userID),
		drafts: cache.NewDraftCache(mem, userID),
		clock:  &clock{now: t0},
	}
	opts := []Option{WithLogger(logger.Discard())}
	if !realClock {
		opts = append(opts, WithClock(f.clock.Now))
	}
	engine := lifecycle.NewEngine(0, 0, lifecycle.WithFixedDelay(delay))
	f.store = New(f.cache, f.drafts, f.remote, engine, userID, opts...)
	require.NoError(t, f.store.Load(context.Background()))
	t.Cleanup(f.store.Close)
	return f
}

func readyDraft(today time.Time) domain.Draft {
	day := domain.TruncateDay(today)
	return domain.Draft{
		Mode:      domain.DraftInline,
		Objective: domain.ObjectiveMessages,
		Audience:  domain.Audience{Country: "CM", City: "Douala"},
		Budget:    domain.Budget{Total: 50000, StartDate: day, EndDate: day.AddDate(0, 0, 4)},
		Creative:  domain.Creative{Text: "Join our team", Link: "https://jobs.example/42"},
	}
}

// acknowledge plays the server side of POST /campaigns.
func acknowledge(serverID string) func(context.Context, domain.Campaign) (domain.Campaign, error) {
	return func(_ context.Context, c domain.Campaign) (domain.Campaign, error) {
		out := c.Clone()
		out.TempID = c.ID
		out.ID = serverID
		out.OwnerType = domain.OwnerProfile
		return out, nil
	}
}

func (f *fixture) createDraft(t *testing.T) domain.Campaign {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.store.SaveDraft(ctx, readyDraft(f.store.now())))
	c, err := f.store.CreateFromDraft(ctx)
	require.NoError(t, err)
	return c
}

func TestCreateFromDraft(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)

	c := f.createDraft(t)
	assert.True(t, domain.IsTemporaryID(c.ID))
	assert.Equal(t, domain.StatusDraft, c.Status)
	assert.Equal(t, userID, c.OwnerID)
	assert.False(t, c.Confirmed())
	assert.Equal(t, 5, c.Budget.DurationDays)

	d, err := f.store.LoadDraft(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)

	cached, err := f.cache.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, c.ID, cached[0].ID)
}

func TestCreateFromDraftOnBehalfOfPage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)

	d := readyDraft(t0)
	d.PageID = "page-7"
	require.NoError(t, f.store.SaveDraft(ctx, d))
	c, err := f.store.CreateFromDraft(ctx)
	require.NoError(t, err)
	assert.Equal(t, "page-7", c.OwnerID)
}

func TestCreateFromDraftWithoutDraft(t *testing.T) {
	f := newFixture(t, time.Minute, false)

	_, err := f.store.CreateFromDraft(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaveDraftValidates(t *testing.T) {
	f := newFixture(t, time.Minute, false)

	d := readyDraft(t0)
	age := 10
	d.Audience.AgeMin = &age

	var vErr *domain.ValidationError
	require.ErrorAs(t, f.store.SaveDraft(context.Background(), d), &vErr)
	assert.Equal(t, "audience.ageMin", vErr.Field)
}

func TestLaunchConfirmedByServer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	draft := f.createDraft(t)

	f.remote.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(acknowledge("abc")).Once()

	c, err := f.store.Launch(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc", c.ID)
	assert.Equal(t, draft.ID, c.TempID)
	assert.Equal(t, domain.StatusReview, c.Status)
	assert.True(t, c.Confirmed())
	assert.Equal(t, t0.Add(time.Minute), c.Review.EndsAt)

	byTemp, err := f.store.Get(ctx, draft.ID)
	require.NoError(t, err)
	byServer, err := f.store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, byServer, byTemp)

	all, err := f.store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLaunchFallsBackWhenServerUnreachable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	draft := f.createDraft(t)

	f.remote.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.Campaign{}, errOffline).Once()

	c, err := f.store.Launch(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, c.ID)
	assert.Equal(t, domain.StatusReview, c.Status)
	assert.False(t, c.Confirmed())

	f.clock.Advance(time.Minute - time.Millisecond)
	c, err = f.store.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReview, c.Status)

	f.clock.Advance(2 * time.Millisecond)
	c, err = f.store.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAwaitingPayment, c.Status)
	assert.Equal(t, domain.PaymentPending, c.Payment.Status)

	cached, err := f.cache.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, domain.StatusAwaitingPayment, cached[0].Status)
}

func TestUpdateRejectsInvalidPatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	draft := f.createDraft(t)

	noCountry := domain.Audience{City: "Douala"}
	_, err := f.store.Update(ctx, draft.ID, CampaignPatch{Audience: &noCountry})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "audience.country", vErr.Field)

	c, err := f.store.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "CM", c.Audience.Country)
}

func TestApplyInvalidTransition(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	draft := f.createDraft(t)

	_, err := f.store.Apply(ctx, draft.ID, domain.EventPause)
	var tErr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, domain.StatusDraft, tErr.State)
	assert.Equal(t, domain.EventPause, tErr.Event)

	c, err := f.store.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, c.Status)
}

func TestApplyForwardsConfirmedStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	draft := f.createDraft(t)

	f.remote.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(acknowledge("abc")).Once()
	_, err := f.store.Launch(ctx, draft.ID)
	require.NoError(t, err)
	f.clock.Advance(2 * time.Minute)

	var sent []domain.Status
	f.remote.EXPECT().UpdateStatus(mock.Anything, "abc", mock.Anything).
		RunAndReturn(func(_ context.Context, id string, req port.UpdateStatusReq) (domain.Campaign, error) {
			sent = append(sent, req.Status)
			out := domain.Campaign{ID: id, Status: req.Status, OwnerType: domain.OwnerProfile}
			if req.Payment != nil {
				out.Payment = *req.Payment
			}
			return out, nil
		}).Times(3)

	c, err := f.store.Apply(ctx, "abc", domain.EventPaymentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.Equal(t, domain.PaymentPaid, c.Payment.Status)

	c, err = f.store.Apply(ctx, draft.ID, domain.EventPause)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, c.Status)

	c, err = f.store.Apply(ctx, "abc", domain.EventTerminate)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnded, c.Status)
	assert.True(t, c.Archived)

	assert.Equal(t, []domain.Status{domain.StatusActive, domain.StatusPaused, domain.StatusEnded}, sent)
}

func TestApplyUnconfirmedStaysLocal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	draft := f.createDraft(t)

	c, err := f.store.Apply(ctx, draft.ID, domain.EventTerminate)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnded, c.Status)
	f.remote.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOnlyWhileDraft(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	draft := f.createDraft(t)

	b := draft.Budget
	b.Daily = 5000
	c, err := f.store.Update(ctx, draft.ID, CampaignPatch{Budget: &b})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), c.Budget.Daily)
	assert.Equal(t, "Douala", c.Audience.City)

	f.remote.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.Campaign{}, errOffline).Once()
	_, err = f.store.Launch(ctx, draft.ID)
	require.NoError(t, err)

	objective := domain.ObjectiveViews
	_, err = f.store.Update(ctx, draft.ID, CampaignPatch{Objective: &objective})
	assert.ErrorIs(t, err, domain.ErrNotEditable)
}

func TestUpsertMergesFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)

	c, err := f.store.Upsert(ctx, domain.Campaign{ID: "local-1", Audience: domain.Audience{Country: "CM", City: "Buea"}})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, c.Status)
	assert.Equal(t, t0, c.CreatedAt)

	c, err = f.store.Upsert(ctx, domain.Campaign{ID: "local-1", Objective: domain.ObjectiveFollowers})
	require.NoError(t, err)
	assert.Equal(t, "Buea", c.Audience.City)
	assert.Equal(t, domain.ObjectiveFollowers, c.Objective)

	all, err := f.store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpsertValidatesMergedRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	age := func(v int) *int { return &v }
	day := domain.TruncateDay(t0)

	_, err := f.store.Upsert(ctx, domain.Campaign{ID: "local-1", Audience: domain.Audience{Country: "CM"}})
	require.NoError(t, err)

	c, err := f.store.Upsert(ctx, domain.Campaign{ID: "local-1", Audience: domain.Audience{AgeMin: age(20)}})
	require.NoError(t, err)
	assert.Equal(t, "CM", c.Audience.Country)
	require.NotNil(t, c.Audience.AgeMin)
	assert.Equal(t, 20, *c.Audience.AgeMin)

	_, err = f.store.Upsert(ctx, domain.Campaign{ID: "local-1", Budget: domain.Budget{
		Total: 10000, StartDate: day, EndDate: day.AddDate(0, 0, 2),
	}})
	require.NoError(t, err)
	c, err = f.store.Upsert(ctx, domain.Campaign{ID: "local-1", Budget: domain.Budget{Daily: 2000}})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), c.Budget.Total)
	assert.Equal(t, int64(2000), c.Budget.Daily)

	_, err = f.store.Upsert(ctx, domain.Campaign{ID: "local-1", Audience: domain.Audience{AgeMax: age(15)}})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "audience.ageMin", vErr.Field)

	stored, err := f.store.Get(ctx, "local-1")
	require.NoError(t, err)
	assert.Nil(t, stored.Audience.AgeMax)
}

func TestUpsertRunningCampaign(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	launched := domain.TruncateDay(t0).AddDate(0, 0, -3)

	running := domain.Campaign{
		ID:        "srv-9",
		TempID:    "local-9",
		OwnerID:   userID,
		OwnerType: domain.OwnerProfile,
		Objective: domain.ObjectiveViews,
		Audience:  domain.Audience{Country: "CM"},
		Budget:    domain.Budget{Total: 9000, StartDate: launched, EndDate: launched.AddDate(0, 0, 6)},
		Status:    domain.StatusActive,
		Review:    domain.Review{StartedAt: launched.Add(9 * time.Hour), EndsAt: launched.Add(10 * time.Hour)},
		Payment:   domain.Payment{Amount: 9000, Status: domain.PaymentPaid},
		CreatedAt: launched,
		UpdatedAt: launched,
	}
	c, err := f.store.Upsert(ctx, running)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, c.Status)

	c, err = f.store.Upsert(ctx, domain.Campaign{ID: "local-9", Status: domain.StatusReview, Stats: domain.Stats{Impressions: 40}})
	require.NoError(t, err)
	assert.Equal(t, "srv-9", c.ID)
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.Equal(t, int64(40), c.Stats.Impressions)
}

func TestUpsertKeepsSortOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)

	for _, c := range []domain.Campaign{
		{ID: "b", CreatedAt: t0},
		{ID: "c", CreatedAt: t0.Add(time.Hour)},
		{ID: "a", CreatedAt: t0},
	} {
		_, err := f.store.Upsert(ctx, c)
		require.NoError(t, err)
	}

	all, err := f.store.List(ctx)
	require.NoError(t, err)
	var ids []string
	for _, c := range all {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestUpsertRejectsInvalid(t *testing.T) {
	f := newFixture(t, time.Minute, false)

	_, err := f.store.Upsert(context.Background(), domain.Campaign{ID: "x", Objective: "reach"})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "objective", vErr.Field)
}

func TestSyncRetriesCreationAndMerges(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	draft := f.createDraft(t)

	f.remote.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.Campaign{}, errOffline).Once()
	_, err := f.store.Launch(ctx, draft.ID)
	require.NoError(t, err)

	var acked domain.Campaign
	f.remote.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
			var err error
			acked, err = acknowledge("abc")(ctx, c)
			return acked, err
		}).Once()
	f.remote.EXPECT().FetchMine(mock.Anything).
		RunAndReturn(func(context.Context) ([]domain.Campaign, error) {
			withStats := acked.Clone()
			withStats.Stats = domain.Stats{Impressions: 120, Clicks: 4}
			other := domain.Campaign{
				ID:        "def",
				OwnerType: domain.OwnerPage,
				Status:    domain.StatusActive,
				CreatedAt: t0.Add(-24 * time.Hour),
				UpdatedAt: t0.Add(-24 * time.Hour),
			}
			return []domain.Campaign{withStats, other}, nil
		}).Once()

	report, err := f.store.Sync(ctx)
	require.NoError(t, err)
	assert.NoError(t, report.RemoteErr)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Merged)
	assert.Zero(t, report.Pushed)

	all, err := f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "abc", all[0].ID)
	assert.Equal(t, draft.ID, all[0].TempID)
	assert.Equal(t, int64(120), all[0].Stats.Impressions)
	assert.Equal(t, "def", all[1].ID)
}

func TestSyncKeepsLocalWhenServerDown(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	draft := f.createDraft(t)

	f.remote.EXPECT().FetchMine(mock.Anything).Return(nil, &domain.RemoteUnavailableError{Op: "fetch_mine", Err: errors.New("503")}).Once()

	report, err := f.store.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, domain.IsRemoteUnavailable(report.RemoteErr))

	all, err := f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, draft.ID, all[0].ID)
}

func TestSyncPushesLocalProgress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	draft := f.createDraft(t)

	var server domain.Campaign
	f.remote.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
			var err error
			server, err = acknowledge("abc")(ctx, c)
			return server, err
		}).Once()
	_, err := f.store.Launch(ctx, draft.ID)
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	f.remote.EXPECT().FetchMine(mock.Anything).
		RunAndReturn(func(context.Context) ([]domain.Campaign, error) {
			return []domain.Campaign{server}, nil
		}).Once()
	f.remote.EXPECT().UpdateStatus(mock.Anything, "abc", mock.MatchedBy(func(req port.UpdateStatusReq) bool {
		return req.Status == domain.StatusAwaitingPayment && req.Review != nil
	})).RunAndReturn(func(_ context.Context, id string, req port.UpdateStatusReq) (domain.Campaign, error) {
		out := server.Clone()
		out.Status = req.Status
		return out, nil
	}).Once()

	report, err := f.store.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Pushed)

	c, err := f.store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAwaitingPayment, c.Status)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	draft := f.createDraft(t)

	f.remote.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(acknowledge("abc")).Once()
	_, err := f.store.Launch(ctx, draft.ID)
	require.NoError(t, err)

	f.remote.EXPECT().FetchOne(mock.Anything, "abc").Return(domain.Campaign{}, errOffline).Once()
	c, err := f.store.Refresh(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc", c.ID)
	assert.Zero(t, c.Stats)

	f.remote.EXPECT().FetchOne(mock.Anything, "abc").
		Return(domain.Campaign{ID: "abc", OwnerType: domain.OwnerProfile, Status: domain.StatusReview, Stats: domain.Stats{Clicks: 9}}, nil).Once()
	c, err = f.store.Refresh(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(9), c.Stats.Clicks)
	assert.Equal(t, "Douala", c.Audience.City)
}

func TestRefreshUnconfirmedSkipsServer(t *testing.T) {
	f := newFixture(t, time.Minute, false)
	draft := f.createDraft(t)

	c, err := f.store.Refresh(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, c.ID)
}

func TestLoadFoldsDuplicateRecords(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)

	require.NoError(t, f.cache.Save(ctx, []domain.Campaign{
		{ID: "local-1", Status: domain.StatusDraft, Audience: domain.Audience{Country: "CM", City: "Kribi"}, CreatedAt: t0, UpdatedAt: t0},
		{ID: "abc", TempID: "local-1", OwnerType: domain.OwnerProfile, Status: domain.StatusReview, CreatedAt: t0, UpdatedAt: t0.Add(time.Second)},
	}))
	require.NoError(t, f.store.Load(ctx))

	all, err := f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "abc", all[0].ID)
	assert.Equal(t, "Kribi", all[0].Audience.City)
	assert.Equal(t, domain.StatusReview, all[0].Status)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Minute, false)
	draft := f.createDraft(t)

	require.NoError(t, f.store.Remove(ctx, draft.ID))
	_, err := f.store.Get(ctx, draft.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.store.Remove(ctx, draft.ID), domain.ErrNotFound)
}

func TestReviewTimerPersistsTransition(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 20*time.Millisecond, true)
	draft := f.createDraft(t)

	f.remote.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.Campaign{}, errOffline).Once()
	_, err := f.store.Launch(ctx, draft.ID)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		cached, err := f.cache.Load(ctx)
		return err == nil && len(cached) == 1 && cached[0].Status == domain.StatusAwaitingPayment
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReviewTimerSkipsRemovedCampaign(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 20*time.Millisecond, true)
	draft := f.createDraft(t)

	f.remote.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.Campaign{}, errOffline).Once()
	_, err := f.store.Launch(ctx, draft.ID)
	require.NoError(t, err)
	require.NoError(t, f.store.Remove(ctx, draft.ID))

	time.Sleep(60 * time.Millisecond)
	cached, err := f.cache.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cached)
}
