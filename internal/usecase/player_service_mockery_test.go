package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/club-website/internal/domain/player"
	playermock "github.com/riskibarqy/club-website/internal/mocks/domain/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestPlayerService_Create_RejectsTakenNumberUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)

	repo.
		On("GetByNumber", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), 9).
		Return(player.Player{ID: 3, Number: 9}, true, nil).
		Once()

	_, err := service.Create(ctx, PlayerInput{Number: 9, FirstName: "Otro", Position: "Delantero"})
	require.ErrorIs(t, err, ErrConflict)
	assert.True(t, strings.Contains(err.Error(), MsgSquadNumberTaken))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlayerService_Create_DefaultsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)

	repo.On("GetByNumber", mock.Anything, 4).Return(player.Player{}, false, nil).Once()
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(p player.Player) bool {
			return p.Skills.Defending == 88 &&
				p.Skills.Speed == player.DefaultSkill &&
				p.Skills.Goalkeeping == player.DefaultSkill &&
				p.Stats.Goals == 2 &&
				p.Stats.MatchesPlayed == 0 &&
				p.Position == player.PositionDefender &&
				p.BirthDate != nil && p.BirthDate.Year() == 1998
		})).
		Return(player.Player{ID: 12, Number: 4}, nil).
		Once()

	got, err := service.Create(ctx, PlayerInput{
		Number:    4,
		FirstName: "Mario",
		LastName:  "Gil",
		Position:  "defensa",
		BirthDate: "1998-02-11",
		Stats:     StatsInput{Goals: intPtr(2)},
		Skills:    SkillsInput{Defending: intPtr(88)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.ID)
}

func TestPlayerService_Create_MapsInsertRaceToConflictUsingMockery(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)

	repo.On("GetByNumber", mock.Anything, 7).Return(player.Player{}, false, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(player.Player{}, player.ErrDuplicateNumber).Once()

	_, err := service.Create(context.Background(), PlayerInput{Number: 7, FirstName: "Ana", Position: "Delantero"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestPlayerService_Create_ValidatesRanges(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(playermock.NewRepository(t))

	tests := []PlayerInput{
		{Number: 0, FirstName: "A", Position: "Portero"},
		{Number: 5, FirstName: "", Position: "Portero"},
		{Number: 5, FirstName: "A", Position: "Portero", Skills: SkillsInput{Passing: intPtr(120)}},
		{Number: 5, FirstName: "A", Position: "Portero", Stats: StatsInput{RedCards: intPtr(-1)}},
		{Number: 5, FirstName: "A", Position: "Portero", BirthDate: "11/02/1998"},
	}
	for _, input := range tests {
		_, err := service.Create(context.Background(), input)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestPlayerService_Update_NumberHeldByAnotherUsingMockery(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)

	repo.On("GetByNumber", mock.Anything, 8).Return(player.Player{ID: 2, Number: 8}, true, nil).Once()

	_, err := service.Update(context.Background(), 5, PlayerInput{Number: 8, FirstName: "Luis", Position: "Delantero"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestPlayerService_Update_KeepsOwnNumberUsingMockery(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)

	repo.On("GetByNumber", mock.Anything, 8).Return(player.Player{ID: 5, Number: 8}, true, nil).Once()
	repo.
		On("Update", mock.Anything, mock.MatchedBy(func(p player.Player) bool { return p.ID == 5 && p.Number == 8 })).
		Return(player.Player{ID: 5, Number: 8}, true, nil).
		Once()

	got, err := service.Update(context.Background(), 5, PlayerInput{Number: 8, FirstName: "Pedro", Position: "Centrocampista"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestPlayerService_Update_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)

	repo.On("GetByNumber", mock.Anything, 3).Return(player.Player{}, false, nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(player.Player{}, false, nil).Once()

	_, err := service.Update(context.Background(), 99, PlayerInput{Number: 3, FirstName: "X", Position: "Defensa"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPlayerService_GetByNumber_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)

	repo.On("GetByNumber", mock.Anything, 30).Return(player.Player{}, false, nil).Once()
	repo.On("Delete", mock.Anything, int64(30)).Return(false, nil).Once()

	_, err := service.GetByNumber(context.Background(), 30)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, service.Delete(context.Background(), 30), ErrNotFound)
}
