package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/player"
)

// MsgSquadNumberTaken is the user-facing message for a duplicate squad number.
const MsgSquadNumberTaken = "Este número de dorsal ya está en uso"

// StatsInput holds optional season totals; nil fields default to zero.
type StatsInput struct {
	MatchesPlayed *int
	Goals         *int
	Assists       *int
	YellowCards   *int
	RedCards      *int
	MinutesPlayed *int
}

// SkillsInput holds optional ratings; nil fields default to player.DefaultSkill.
type SkillsInput struct {
	Speed       *int
	Stamina     *int
	Strength    *int
	Technique   *int
	Passing     *int
	Dribbling   *int
	Defending   *int
	Goalkeeping *int
}

type PlayerInput struct {
	Number       int
	FirstName    string
	LastName     string
	Position     string
	Age          int
	Height       string
	Weight       string
	Nationality  string
	BirthDate    string
	BirthPlace   string
	Photo        string
	Stats        StatsInput
	Skills       SkillsInput
	Biography    string
	Achievements []string
}

type PlayerService struct {
	repo player.Repository
}

func NewPlayerService(repo player.Repository) *PlayerService {
	return &PlayerService{repo: repo}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	players, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) GetByID(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByID")
	defer span.End()

	p, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player id=%d", ErrNotFound, id)
	}
	return p, nil
}

func (s *PlayerService) GetByNumber(ctx context.Context, number int) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByNumber")
	defer span.End()

	p, exists, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by number: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player numero=%d", ErrNotFound, number)
	}
	return p, nil
}

func (s *PlayerService) Create(ctx context.Context, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	p, err := playerFromInput(input)
	if err != nil {
		return player.Player{}, err
	}

	_, taken, err := s.repo.GetByNumber(ctx, p.Number)
	if err != nil {
		return player.Player{}, fmt.Errorf("check squad number: %w", err)
	}
	if taken {
		return player.Player{}, fmt.Errorf("%w: %s", ErrConflict, MsgSquadNumberTaken)
	}

	created, err := s.repo.Create(ctx, p)
	if errors.Is(err, player.ErrDuplicateNumber) {
		return player.Player{}, fmt.Errorf("%w: %s", ErrConflict, MsgSquadNumberTaken)
	}
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

// Update overwrites the whole player record.
func (s *PlayerService) Update(ctx context.Context, id int64, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	p, err := playerFromInput(input)
	if err != nil {
		return player.Player{}, err
	}
	p.ID = id

	holder, taken, err := s.repo.GetByNumber(ctx, p.Number)
	if err != nil {
		return player.Player{}, fmt.Errorf("check squad number: %w", err)
	}
	if taken && holder.ID != id {
		return player.Player{}, fmt.Errorf("%w: %s", ErrConflict, MsgSquadNumberTaken)
	}

	updated, exists, err := s.repo.Update(ctx, p)
	if errors.Is(err, player.ErrDuplicateNumber) {
		return player.Player{}, fmt.Errorf("%w: %s", ErrConflict, MsgSquadNumberTaken)
	}
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player id=%d", ErrNotFound, id)
	}
	return updated, nil
}

func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: player id=%d", ErrNotFound, id)
	}
	return nil
}

func playerFromInput(input PlayerInput) (player.Player, error) {
	p := player.Player{
		Number:      input.Number,
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		Position:    player.NormalizePosition(player.Position(input.Position)),
		Age:         input.Age,
		Height:      strings.TrimSpace(input.Height),
		Weight:      strings.TrimSpace(input.Weight),
		Nationality: strings.TrimSpace(input.Nationality),
		BirthPlace:  strings.TrimSpace(input.BirthPlace),
		Photo:       strings.TrimSpace(input.Photo),
		Stats: player.Stats{
			MatchesPlayed: intOr(input.Stats.MatchesPlayed, 0),
			Goals:         intOr(input.Stats.Goals, 0),
			Assists:       intOr(input.Stats.Assists, 0),
			YellowCards:   intOr(input.Stats.YellowCards, 0),
			RedCards:      intOr(input.Stats.RedCards, 0),
			MinutesPlayed: intOr(input.Stats.MinutesPlayed, 0),
		},
		Skills: player.Skills{
			Speed:       intOr(input.Skills.Speed, player.DefaultSkill),
			Stamina:     intOr(input.Skills.Stamina, player.DefaultSkill),
			Strength:    intOr(input.Skills.Strength, player.DefaultSkill),
			Technique:   intOr(input.Skills.Technique, player.DefaultSkill),
			Passing:     intOr(input.Skills.Passing, player.DefaultSkill),
			Dribbling:   intOr(input.Skills.Dribbling, player.DefaultSkill),
			Defending:   intOr(input.Skills.Defending, player.DefaultSkill),
			Goalkeeping: intOr(input.Skills.Goalkeeping, player.DefaultSkill),
		},
		Biography:    strings.TrimSpace(input.Biography),
		Achievements: compactStrings(input.Achievements),
	}

	if raw := strings.TrimSpace(input.BirthDate); raw != "" {
		if len(raw) > len(time.DateOnly) {
			raw = raw[:len(time.DateOnly)]
		}
		born, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return player.Player{}, fmt.Errorf("%w: fecha_nacimiento must use YYYY-MM-DD", ErrInvalidInput)
		}
		p.BirthDate = &born
	}

	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return p, nil
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func compactStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
