package httpapi

import (
	"net/http"

	"github.com/riskibarqy/club-website/internal/domain/visit"
	"github.com/riskibarqy/club-website/internal/usecase"
)

func (h *Handler) RecordVisit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordVisit")
	defer span.End()

	var req visitRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err := h.visitService.Record(ctx, usecase.VisitInput{
		PageURL:   req.PageURL,
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, successBody{Success: true})
}

func (h *Handler) GetVisitStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetVisitStats")
	defer span.End()

	stats, err := h.visitService.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get visit stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, visitStatsToDTO(stats))
}

type visitRequest struct {
	PageURL string `json:"page_url"`
}

type visitStatsDTO struct {
	Total     int64 `json:"total_visits"`
	Today     int64 `json:"visits_today"`
	ThisWeek  int64 `json:"visits_this_week"`
	ThisMonth int64 `json:"visits_this_month"`
}

func visitStatsToDTO(s visit.Stats) visitStatsDTO {
	return visitStatsDTO{
		Total:     s.Total,
		Today:     s.Today,
		ThisWeek:  s.ThisWeek,
		ThisMonth: s.ThisMonth,
	}
}
