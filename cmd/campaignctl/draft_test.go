package main

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-ads/internal/core/domain"
)

func parse(t *testing.T, args ...string) (*contentFlags, *pflag.FlagSet) {
	t.Helper()
	var f contentFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(fs)
	require.NoError(t, fs.Parse(args))
	return &f, fs
}

func TestBudgetFlagsKeepUnsetFields(t *testing.T) {
	f, fs := parse(t, "--total", "50 000 FCFA", "--end", "2025-01-10")
	saved := domain.Budget{Daily: 1000, StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}

	b, changed, err := f.budget(fs, saved)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, int64(50000), b.Total)
	assert.Equal(t, int64(1000), b.Daily)
	assert.Equal(t, saved.StartDate, b.StartDate)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), b.EndDate)
}

func TestBudgetFlagsRejectBadDate(t *testing.T) {
	f, fs := parse(t, "--start", "tomorrow")

	_, _, err := f.budget(fs, domain.Budget{})
	var pErr *domain.ParseError
	assert.ErrorAs(t, err, &pErr)
}

func TestAudienceAndCreativeFlags(t *testing.T) {
	f, fs := parse(t, "--country", "CM", "--age-min", "18", "--image", "https://x/1.jpg", "--image", "https://x/2.jpg")

	a, changed := f.audience(fs, domain.Audience{City: "Douala"})
	assert.True(t, changed)
	assert.Equal(t, "CM", a.Country)
	assert.Equal(t, "Douala", a.City)
	require.NotNil(t, a.AgeMin)
	assert.Equal(t, 18, *a.AgeMin)
	assert.Nil(t, a.AgeMax)

	original := domain.Creative{Text: "hiring", Media: []domain.Media{{URL: "old", Type: domain.MediaVideo}}}
	c, changed := f.creative(fs, original)
	assert.True(t, changed)
	assert.Equal(t, "hiring", c.Text)
	assert.Len(t, c.Media, 2)
	assert.Equal(t, "old", original.Media[0].URL)
}

func TestNoFlagsMeansNoChange(t *testing.T) {
	f, fs := parse(t)

	_, changed := f.audience(fs, domain.Audience{})
	assert.False(t, changed)
	_, changed = f.creative(fs, domain.Creative{})
	assert.False(t, changed)
	_, changed, err := f.budget(fs, domain.Budget{})
	require.NoError(t, err)
	assert.False(t, changed)
}
