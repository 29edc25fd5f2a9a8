package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/club-website/internal/domain/match"
)

// MsgMissingFields is returned when rival, fecha, hora or the score are absent.
const MsgMissingFields = "Faltan campos requeridos"

type MatchInput struct {
	Opponent    string
	Date        string
	Time        string
	Home        *bool
	Competition string
	Venue       *string
}

type MatchService struct {
	repo match.Repository
}

func NewMatchService(repo match.Repository) *MatchService {
	return &MatchService{repo: repo}
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) GetByID(ctx context.Context, id int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetByID")
	defer span.End()

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match id=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *MatchService) Create(ctx context.Context, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	item, err := matchFromInput(input)
	if err != nil {
		return match.Match{}, err
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return created, nil
}

func (s *MatchService) Update(ctx context.Context, id int64, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	item, err := matchFromInput(input)
	if err != nil {
		return match.Match{}, err
	}
	item.ID = id

	updated, exists, err := s.repo.Update(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match id=%d", ErrNotFound, id)
	}
	return updated, nil
}

func (s *MatchService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: match id=%d", ErrNotFound, id)
	}
	return nil
}

func matchFromInput(input MatchInput) (match.Match, error) {
	if strings.TrimSpace(input.Opponent) == "" || strings.TrimSpace(input.Date) == "" || strings.TrimSpace(input.Time) == "" {
		return match.Match{}, fmt.Errorf("%w: %s", ErrInvalidInput, MsgMissingFields)
	}

	item := match.Match{
		Opponent:    input.Opponent,
		Date:        input.Date,
		Time:        input.Time,
		Home:        input.Home == nil || *input.Home,
		Competition: input.Competition,
		Venue:       input.Venue,
	}
	if err := item.Normalize(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return item, nil
}
