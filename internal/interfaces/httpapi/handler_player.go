package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/club-website/internal/domain/player"
	"github.com/riskibarqy/club-website/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.playerService.GetByID(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) GetPlayerByNumber(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerByNumber")
	defer span.End()

	raw := strings.TrimSpace(r.PathValue("numero"))
	number, err := strconv.Atoi(raw)
	if err != nil {
		writeError(ctx, w, usecaseInvalid("invalid numero %q", raw))
		return
	}

	p, err := h.playerService.GetByNumber(ctx, number)
	if err != nil {
		h.logger.WarnContext(ctx, "get player by number failed", "numero", number, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		h.logger.WarnContext(ctx, "decode player failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.playerService.Create(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "numero", req.Number, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerCreatedDTO{Success: true, ID: p.ID, Player: playerToDTO(p)})
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		h.logger.WarnContext(ctx, "decode player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.playerService.Update(ctx, id, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerUpdatedDTO{Success: true, Player: playerToDTO(p)})
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, successBody{Success: true})
}

type playerStatsRequest struct {
	MatchesPlayed *int `json:"partidos_jugados" validate:"omitempty,min=0"`
	Goals         *int `json:"goles" validate:"omitempty,min=0"`
	Assists       *int `json:"asistencias" validate:"omitempty,min=0"`
	YellowCards   *int `json:"tarjetas_amarillas" validate:"omitempty,min=0"`
	RedCards      *int `json:"tarjetas_rojas" validate:"omitempty,min=0"`
	MinutesPlayed *int `json:"minutos_jugados" validate:"omitempty,min=0"`
}

type playerSkillsRequest struct {
	Speed       *int `json:"velocidad" validate:"omitempty,min=0,max=100"`
	Stamina     *int `json:"resistencia" validate:"omitempty,min=0,max=100"`
	Strength    *int `json:"fuerza" validate:"omitempty,min=0,max=100"`
	Technique   *int `json:"tecnica" validate:"omitempty,min=0,max=100"`
	Passing     *int `json:"pase" validate:"omitempty,min=0,max=100"`
	Dribbling   *int `json:"regate" validate:"omitempty,min=0,max=100"`
	Defending   *int `json:"defensa" validate:"omitempty,min=0,max=100"`
	Goalkeeping *int `json:"porteria" validate:"omitempty,min=0,max=100"`
}

type playerRequest struct {
	Number       int                  `json:"numero" validate:"required,min=1,max=99"`
	FirstName    string               `json:"nombre" validate:"required,max=100"`
	LastName     string               `json:"apellidos" validate:"max=150"`
	Position     string               `json:"posicion" validate:"required,max=50"`
	Age          int                  `json:"edad" validate:"min=0,max=80"`
	Height       string               `json:"altura" validate:"max=20"`
	Weight       string               `json:"peso" validate:"max=20"`
	Nationality  string               `json:"nacionalidad" validate:"max=100"`
	BirthDate    string               `json:"fecha_nacimiento"`
	BirthPlace   string               `json:"lugar_nacimiento" validate:"max=150"`
	Photo        string               `json:"foto"`
	Stats        *playerStatsRequest  `json:"estadisticas"`
	Skills       *playerSkillsRequest `json:"habilidades"`
	Biography    string               `json:"biografia"`
	Achievements []string             `json:"logros" validate:"max=50"`
}

func (r playerRequest) toInput() usecase.PlayerInput {
	input := usecase.PlayerInput{
		Number:       r.Number,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Position:     r.Position,
		Age:          r.Age,
		Height:       r.Height,
		Weight:       r.Weight,
		Nationality:  r.Nationality,
		BirthDate:    r.BirthDate,
		BirthPlace:   r.BirthPlace,
		Photo:        r.Photo,
		Biography:    r.Biography,
		Achievements: r.Achievements,
	}
	if s := r.Stats; s != nil {
		input.Stats = usecase.StatsInput{
			MatchesPlayed: s.MatchesPlayed,
			Goals:         s.Goals,
			Assists:       s.Assists,
			YellowCards:   s.YellowCards,
			RedCards:      s.RedCards,
			MinutesPlayed: s.MinutesPlayed,
		}
	}
	if s := r.Skills; s != nil {
		input.Skills = usecase.SkillsInput{
			Speed:       s.Speed,
			Stamina:     s.Stamina,
			Strength:    s.Strength,
			Technique:   s.Technique,
			Passing:     s.Passing,
			Dribbling:   s.Dribbling,
			Defending:   s.Defending,
			Goalkeeping: s.Goalkeeping,
		}
	}
	return input
}

type playerStatsDTO struct {
	MatchesPlayed int `json:"partidos_jugados"`
	Goals         int `json:"goles"`
	Assists       int `json:"asistencias"`
	YellowCards   int `json:"tarjetas_amarillas"`
	RedCards      int `json:"tarjetas_rojas"`
	MinutesPlayed int `json:"minutos_jugados"`
}

type playerSkillsDTO struct {
	Speed       int `json:"velocidad"`
	Stamina     int `json:"resistencia"`
	Strength    int `json:"fuerza"`
	Technique   int `json:"tecnica"`
	Passing     int `json:"pase"`
	Dribbling   int `json:"regate"`
	Defending   int `json:"defensa"`
	Goalkeeping int `json:"porteria"`
}

type playerDTO struct {
	ID             int64           `json:"id"`
	Number         int             `json:"numero"`
	FirstName      string          `json:"nombre"`
	LastName       string          `json:"apellidos"`
	FullName       string          `json:"nombre_completo"`
	Position       string          `json:"posicion"`
	Age            int             `json:"edad"`
	Height         string          `json:"altura"`
	Weight         string          `json:"peso"`
	Nationality    string          `json:"nacionalidad"`
	BirthDate      *string         `json:"fecha_nacimiento"`
	BirthPlace     string          `json:"lugar_nacimiento"`
	Photo          string          `json:"foto"`
	Stats          playerStatsDTO  `json:"estadisticas"`
	Skills         playerSkillsDTO `json:"habilidades"`
	FeaturedSkills []string        `json:"habilidades_destacadas"`
	Biography      string          `json:"biografia"`
	Achievements   []string        `json:"logros"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

type playerCreatedDTO struct {
	Success bool      `json:"success"`
	ID      int64     `json:"id"`
	Player  playerDTO `json:"player"`
}

type playerUpdatedDTO struct {
	Success bool      `json:"success"`
	Player  playerDTO `json:"player"`
}

func playerToDTO(p player.Player) playerDTO {
	var birthDate *string
	if p.BirthDate != nil {
		v := p.BirthDate.Format("2006-01-02")
		birthDate = &v
	}

	return playerDTO{
		ID:          p.ID,
		Number:      p.Number,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		FullName:    p.FullName(),
		Position:    string(p.Position),
		Age:         p.Age,
		Height:      p.Height,
		Weight:      p.Weight,
		Nationality: p.Nationality,
		BirthDate:   birthDate,
		BirthPlace:  p.BirthPlace,
		Photo:       p.Photo,
		Stats: playerStatsDTO{
			MatchesPlayed: p.Stats.MatchesPlayed,
			Goals:         p.Stats.Goals,
			Assists:       p.Stats.Assists,
			YellowCards:   p.Stats.YellowCards,
			RedCards:      p.Stats.RedCards,
			MinutesPlayed: p.Stats.MinutesPlayed,
		},
		Skills: playerSkillsDTO{
			Speed:       p.Skills.Speed,
			Stamina:     p.Skills.Stamina,
			Strength:    p.Skills.Strength,
			Technique:   p.Skills.Technique,
			Passing:     p.Skills.Passing,
			Dribbling:   p.Skills.Dribbling,
			Defending:   p.Skills.Defending,
			Goalkeeping: p.Skills.Goalkeeping,
		},
		FeaturedSkills: player.SkillsForPosition(p.Position),
		Biography:      p.Biography,
		Achievements:   nonNilStrings(p.Achievements),
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}
