package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suppa/taox-brain/internal/repository/postgres"
	"github.com/suppa/taox-brain/internal/service"
	"github.com/suppa/taox-brain/internal/testutil"
)

func TestAnalyticsService_AddMatches(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	analytics := service.NewAnalyticsService(repos.Match)
	ctx := context.Background()

	count, err := analytics.AddMatches(ctx, []service.MatchRow{
		{Date: "2026-01-10", Hero: "Nakroth", Result: "Win"},
		{Date: "2026-01-11", Hero: "Aya", Result: "Loss", Note: "bad comp"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	matches, err := analytics.ListMatches(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.False(t, m.UploadedAt.IsZero())
	}

	// Empty upload is a no-op
	count, err = analytics.AddMatches(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAnalyticsService_Stats(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	analytics := service.NewAnalyticsService(repos.Match)
	ctx := context.Background()

	_, err := analytics.AddMatches(ctx, []service.MatchRow{
		{Date: "2026-01-10", Hero: "Nakroth", Result: "Win"},
		{Date: "2026-01-11", Hero: "Nakroth", Result: "w"},
		{Date: "2026-01-12", Hero: "Nakroth", Result: "Loss"},
		{Date: "2026-01-13", Hero: "Aya", Result: "Victory"},
	})
	require.NoError(t, err)

	summary, err := analytics.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalMatches)
	assert.Equal(t, 3, summary.TotalWins)
	assert.InDelta(t, 75.0, summary.WinRate, 0.01)

	// Most played first
	require.Len(t, summary.HeroStats, 2)
	nakroth := summary.HeroStats[0]
	assert.Equal(t, "Nakroth", nakroth.Hero)
	assert.Equal(t, 3, nakroth.PickCount)
	assert.Equal(t, 2, nakroth.Wins)
	assert.InDelta(t, 66.67, nakroth.WinRate, 0.01)

	aya := summary.HeroStats[1]
	assert.Equal(t, "Aya", aya.Hero)
	assert.Equal(t, 1, aya.PickCount)
	assert.InDelta(t, 100.0, aya.WinRate, 0.01)
}

func TestAnalyticsService_Stats_Empty(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	analytics := service.NewAnalyticsService(repos.Match)
	ctx := context.Background()

	summary, err := analytics.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalMatches)
	assert.Equal(t, 0.0, summary.WinRate)
	assert.Empty(t, summary.HeroStats)
}

func TestAnalyticsService_Stats_GroupsByExactName(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	analytics := service.NewAnalyticsService(repos.Match)
	ctx := context.Background()

	// Hero is a free string; different spellings are different heroes
	_, err := analytics.AddMatches(ctx, []service.MatchRow{
		{Date: "2026-01-10", Hero: "Nakroth", Result: "Win"},
		{Date: "2026-01-11", Hero: "nakroth", Result: "Loss"},
	})
	require.NoError(t, err)

	summary, err := analytics.Stats(ctx)
	require.NoError(t, err)
	assert.Len(t, summary.HeroStats, 2)
}
