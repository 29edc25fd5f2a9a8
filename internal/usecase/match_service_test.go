package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/club-website/internal/domain/match"
	"github.com/riskibarqy/club-website/internal/infrastructure/repository/memory"
)

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func TestMatchService_CreateAppliesDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewMatchService(memory.NewMatchRepository(nil))

	created, err := service.Create(ctx, MatchInput{Opponent: " CD Norte ", Date: "2024-05-01", Time: "18:00:00", Venue: strPtr("  ")})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if !created.Home || created.Competition != match.DefaultCompetition {
		t.Fatalf("expected local=true and default competition, got %+v", created)
	}
	if created.Venue != nil {
		t.Fatalf("expected blank venue to be stored as null, got %q", *created.Venue)
	}
	if created.Opponent != "CD Norte" || created.Time != "18:00" {
		t.Fatalf("unexpected normalized match: %+v", created)
	}
}

func TestMatchService_CreateMissingFields(t *testing.T) {
	t.Parallel()

	service := NewMatchService(memory.NewMatchRepository(nil))
	for _, input := range []MatchInput{
		{Date: "2024-05-01", Time: "18:00"},
		{Opponent: "CD Norte", Time: "18:00"},
		{Opponent: "CD Norte", Date: "2024-05-01"},
	} {
		_, err := service.Create(context.Background(), input)
		if !errors.Is(err, ErrInvalidInput) || !strings.Contains(err.Error(), MsgMissingFields) {
			t.Fatalf("expected missing fields error for %+v, got %v", input, err)
		}
	}

	if _, err := service.Create(context.Background(), MatchInput{Opponent: "CD Norte", Date: "mañana", Time: "18:00"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid date error, got %v", err)
	}
}

func TestMatchService_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewMatchService(memory.NewMatchRepository(memory.SeedMatches()))

	items, err := service.List(ctx)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(items) != 2 || items[0].Opponent != "CD Norte" {
		t.Fatalf("expected seeded matches ordered by date, got %+v", items)
	}

	updated, err := service.Update(ctx, items[0].ID, MatchInput{Opponent: "CD Norte B", Date: "2024-05-02", Time: "19:00", Home: boolPtr(false), Competition: "Copa"})
	if err != nil {
		t.Fatalf("update match: %v", err)
	}
	if updated.Home || updated.Competition != "Copa" || updated.Date != "2024-05-02" {
		t.Fatalf("unexpected updated match: %+v", updated)
	}

	if _, err := service.Update(ctx, 404, MatchInput{Opponent: "X", Date: "2024-05-02", Time: "19:00"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := service.Delete(ctx, items[0].ID); err != nil {
		t.Fatalf("delete match: %v", err)
	}
	if _, err := service.GetByID(ctx, items[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted match to be gone, got %v", err)
	}
	if err := service.Delete(ctx, items[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
