package httpapi

import (
	"net/http"

	"github.com/riskibarqy/club-website/internal/domain/match"
	"github.com/riskibarqy/club-website/internal/usecase"
)

const msgMatchDeleted = "Partido eliminado correctamente"

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matchService.GetByID(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		h.logger.WarnContext(ctx, "decode match failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matchService.Create(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "rival", req.Opponent, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(m))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		h.logger.WarnContext(ctx, "decode match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matchService.Update(ctx, id, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, messageBody{Message: msgMatchDeleted})
}

// Required fields are checked by the service so the client gets the
// "Faltan campos requeridos" message rather than a validator dump.
type matchRequest struct {
	Opponent    string  `json:"rival" validate:"max=150"`
	Date        string  `json:"fecha"`
	Time        string  `json:"hora"`
	Home        *bool   `json:"local"`
	Competition string  `json:"competicion" validate:"max=100"`
	Venue       *string `json:"estadio" validate:"omitempty,max=150"`
}

func (r matchRequest) toInput() usecase.MatchInput {
	return usecase.MatchInput{
		Opponent:    r.Opponent,
		Date:        r.Date,
		Time:        r.Time,
		Home:        r.Home,
		Competition: r.Competition,
		Venue:       r.Venue,
	}
}

type matchDTO struct {
	ID          int64   `json:"id"`
	Opponent    string  `json:"rival"`
	Date        string  `json:"fecha"`
	Time        string  `json:"hora"`
	Home        bool    `json:"local"`
	Competition string  `json:"competicion"`
	Venue       *string `json:"estadio"`
	CreatedAt   string  `json:"created_at"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:          m.ID,
		Opponent:    m.Opponent,
		Date:        m.Date,
		Time:        m.Time,
		Home:        m.Home,
		Competition: m.Competition,
		Venue:       m.Venue,
		CreatedAt:   formatTime(m.CreatedAt),
	}
}
