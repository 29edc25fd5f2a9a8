package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/match"
	"github.com/riskibarqy/club-website/internal/domain/visit"
	"github.com/riskibarqy/club-website/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/club-website/internal/mocks/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubVisitStats struct {
	stats visit.Stats
	err   error
}

func (s stubVisitStats) Stats(context.Context) (visit.Stats, error) {
	return s.stats, s.err
}

func TestDashboardService_Get(t *testing.T) {
	t.Parallel()

	posts := memory.SeedBlogPosts()
	posts[2].Published = false

	service := NewDashboardService(
		memory.NewBlogRepository(posts),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewResultRepository(memory.SeedResults()),
		stubVisitStats{stats: visit.Stats{Total: 40, Today: 2, ThisWeek: 9, ThisMonth: 25}},
		time.UTC,
	)
	service.now = func() time.Time { return time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC) }

	got, err := service.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, got.Posts)
	assert.Equal(t, 2, got.PublishedPosts)
	assert.Equal(t, 3, got.Players)
	assert.Equal(t, 2, got.UpcomingMatches)
	assert.Equal(t, 2, got.Results)
	require.NotNil(t, got.NextMatch)
	assert.Equal(t, "Atlético Sur", got.NextMatch.Opponent)
	require.NotNil(t, got.LastResult)
	assert.Equal(t, "Racing Villa", got.LastResult.Opponent)
	assert.Equal(t, int64(40), got.Visits.Total)
}

func TestDashboardService_Get_NextMatchUsesKickOffTime(t *testing.T) {
	t.Parallel()

	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	service := NewDashboardService(
		memory.NewBlogRepository(nil),
		memory.NewPlayerRepository(nil),
		memory.NewMatchRepository([]match.Match{
			{Opponent: "CD Norte", Date: "2024-05-05", Time: "10:00", Home: true, Competition: match.DefaultCompetition},
			{Opponent: "Atlético Sur", Date: "2024-05-05", Time: "18:30", Home: false, Competition: match.DefaultCompetition},
		}),
		memory.NewResultRepository(nil),
		stubVisitStats{},
		madrid,
	)
	// 11:00 in Madrid: the morning match has already kicked off.
	service.now = func() time.Time { return time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC) }

	got, err := service.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got.NextMatch)
	assert.Equal(t, "Atlético Sur", got.NextMatch.Opponent)
}

func TestDashboardService_GetFailsWhenASectionFailsUsingMockery(t *testing.T) {
	t.Parallel()

	matches := matchmock.NewRepository(t)
	matches.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()

	service := NewDashboardService(
		memory.NewBlogRepository(nil),
		memory.NewPlayerRepository(nil),
		matches,
		memory.NewResultRepository(nil),
		stubVisitStats{},
		nil,
	)

	_, err := service.Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list matches")
}
