package httpapi

import (
	"net/http"

	"github.com/riskibarqy/club-website/internal/domain/result"
	"github.com/riskibarqy/club-website/internal/usecase"
)

const msgResultDeleted = "Resultado eliminado correctamente"

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResults")
	defer span.End()

	results, err := h.resultService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list results failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]resultDTO, 0, len(results))
	for _, res := range results {
		items = append(items, resultToDTO(res))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetResult")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err := h.resultService.GetByID(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get result failed", "result_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, resultToDTO(res))
}

func (h *Handler) CreateResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateResult")
	defer span.End()

	var req resultRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		h.logger.WarnContext(ctx, "decode result failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err := h.resultService.Create(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create result failed", "rival", req.Opponent, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, resultToDTO(res))
}

func (h *Handler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateResult")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req resultRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		h.logger.WarnContext(ctx, "decode result failed", "result_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err := h.resultService.Update(ctx, id, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update result failed", "result_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, resultToDTO(res))
}

func (h *Handler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteResult")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.resultService.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete result failed", "result_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, messageBody{Message: msgResultDeleted})
}

type resultRequest struct {
	Opponent     string  `json:"rival" validate:"max=150"`
	Date         string  `json:"fecha"`
	GoalsFor     *int    `json:"goles_favor"`
	GoalsAgainst *int    `json:"goles_contra"`
	Home         *bool   `json:"local"`
	Competition  string  `json:"competicion" validate:"max=100"`
	Venue        *string `json:"estadio" validate:"omitempty,max=150"`
}

func (r resultRequest) toInput() usecase.ResultInput {
	return usecase.ResultInput{
		Opponent:     r.Opponent,
		Date:         r.Date,
		GoalsFor:     r.GoalsFor,
		GoalsAgainst: r.GoalsAgainst,
		Home:         r.Home,
		Competition:  r.Competition,
		Venue:        r.Venue,
	}
}

type resultDTO struct {
	ID           int64   `json:"id"`
	Opponent     string  `json:"rival"`
	Date         string  `json:"fecha"`
	GoalsFor     int     `json:"goles_favor"`
	GoalsAgainst int     `json:"goles_contra"`
	Home         bool    `json:"local"`
	Competition  string  `json:"competicion"`
	Venue        *string `json:"estadio"`
	Outcome      string  `json:"resultado"`
	OutcomeLabel string  `json:"resultado_texto"`
	Score        string  `json:"marcador"`
	CreatedAt    string  `json:"created_at"`
}

func resultToDTO(res result.Result) resultDTO {
	outcome := res.Outcome()
	return resultDTO{
		ID:           res.ID,
		Opponent:     res.Opponent,
		Date:         res.Date,
		GoalsFor:     res.GoalsFor,
		GoalsAgainst: res.GoalsAgainst,
		Home:         res.Home,
		Competition:  res.Competition,
		Venue:        res.Venue,
		Outcome:      string(outcome),
		OutcomeLabel: outcome.Label(),
		Score:        res.Score(),
		CreatedAt:    formatTime(res.CreatedAt),
	}
}
