package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/blog"
	"github.com/riskibarqy/club-website/internal/domain/match"
	"github.com/riskibarqy/club-website/internal/domain/player"
	"github.com/riskibarqy/club-website/internal/domain/result"
	"github.com/riskibarqy/club-website/internal/domain/visit"
	"github.com/sourcegraph/conc/pool"
)

type Dashboard struct {
	Posts           int
	PublishedPosts  int
	Players         int
	UpcomingMatches int
	Results         int
	NextMatch       *match.Match
	LastResult      *result.Result
	Visits          visit.Stats
}

type visitStatsProvider interface {
	Stats(ctx context.Context) (visit.Stats, error)
}

type DashboardService struct {
	blogRepo   blog.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
	resultRepo result.Repository
	visits     visitStatsProvider
	location   *time.Location
	now        func() time.Time
}

func NewDashboardService(
	blogRepo blog.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	resultRepo result.Repository,
	visits visitStatsProvider,
	location *time.Location,
) *DashboardService {
	if location == nil {
		location = time.UTC
	}
	return &DashboardService{
		blogRepo:   blogRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		resultRepo: resultRepo,
		visits:     visits,
		location:   location,
		now:        time.Now,
	}
}

// Get loads every section concurrently. The first failure cancels the rest.
func (s *DashboardService) Get(ctx context.Context) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	var (
		out     Dashboard
		posts   []blog.Post
		matches []match.Match
		results []result.Result
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.blogRepo.List(ctx, false)
		if err != nil {
			return fmt.Errorf("list posts: %w", err)
		}
		posts = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		out.Players = len(items)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		matches = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.resultRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		results = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		stats, err := s.visits.Stats(ctx)
		if err != nil {
			return err
		}
		out.Visits = stats
		return nil
	})
	if err := p.Wait(); err != nil {
		return Dashboard{}, fmt.Errorf("load dashboard: %w", err)
	}

	out.Posts = len(posts)
	for _, post := range posts {
		if post.Published {
			out.PublishedPosts++
		}
	}

	out.UpcomingMatches = len(matches)
	now := s.now()
	for i := range matches {
		startsAt, err := matches[i].StartsAt(s.location)
		if err != nil {
			continue
		}
		if startsAt.After(now) {
			next := matches[i]
			out.NextMatch = &next
			break
		}
	}

	out.Results = len(results)
	if len(results) > 0 {
		last := results[0]
		out.LastResult = &last
	}

	return out, nil
}
