package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/club-website/internal/domain/result"
)

type ResultInput struct {
	Opponent     string
	Date         string
	GoalsFor     *int
	GoalsAgainst *int
	Home         *bool
	Competition  string
	Venue        *string
}

type ResultService struct {
	repo result.Repository
}

func NewResultService(repo result.Repository) *ResultService {
	return &ResultService{repo: repo}
}

func (s *ResultService) List(ctx context.Context) ([]result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return items, nil
}

func (s *ResultService) GetByID(ctx context.Context, id int64) (result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.GetByID")
	defer span.End()

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return result.Result{}, fmt.Errorf("get result: %w", err)
	}
	if !exists {
		return result.Result{}, fmt.Errorf("%w: result id=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *ResultService) Create(ctx context.Context, input ResultInput) (result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Create")
	defer span.End()

	item, err := resultFromInput(input)
	if err != nil {
		return result.Result{}, err
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return result.Result{}, fmt.Errorf("create result: %w", err)
	}
	return created, nil
}

func (s *ResultService) Update(ctx context.Context, id int64, input ResultInput) (result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Update")
	defer span.End()

	item, err := resultFromInput(input)
	if err != nil {
		return result.Result{}, err
	}
	item.ID = id

	updated, exists, err := s.repo.Update(ctx, item)
	if err != nil {
		return result.Result{}, fmt.Errorf("update result: %w", err)
	}
	if !exists {
		return result.Result{}, fmt.Errorf("%w: result id=%d", ErrNotFound, id)
	}
	return updated, nil
}

func (s *ResultService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: result id=%d", ErrNotFound, id)
	}
	return nil
}

func resultFromInput(input ResultInput) (result.Result, error) {
	if strings.TrimSpace(input.Opponent) == "" || strings.TrimSpace(input.Date) == "" ||
		input.GoalsFor == nil || input.GoalsAgainst == nil {
		return result.Result{}, fmt.Errorf("%w: %s", ErrInvalidInput, MsgMissingFields)
	}

	item := result.Result{
		Opponent:     input.Opponent,
		Date:         input.Date,
		GoalsFor:     *input.GoalsFor,
		GoalsAgainst: *input.GoalsAgainst,
		Home:         input.Home == nil || *input.Home,
		Competition:  input.Competition,
		Venue:        input.Venue,
	}
	if err := item.Normalize(); err != nil {
		return result.Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return item, nil
}
