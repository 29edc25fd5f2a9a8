package httpapi

import "net/http"

func (h *Handler) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAdminDashboard")
	defer span.End()

	dashboard, err := h.dashboardService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := dashboardDTO{
		Posts:           dashboard.Posts,
		PublishedPosts:  dashboard.PublishedPosts,
		Players:         dashboard.Players,
		UpcomingMatches: dashboard.UpcomingMatches,
		Results:         dashboard.Results,
		Visits:          visitStatsToDTO(dashboard.Visits),
	}
	if dashboard.NextMatch != nil {
		next := matchToDTO(*dashboard.NextMatch)
		out.NextMatch = &next
	}
	if dashboard.LastResult != nil {
		last := resultToDTO(*dashboard.LastResult)
		out.LastResult = &last
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

type dashboardDTO struct {
	Posts           int           `json:"posts"`
	PublishedPosts  int           `json:"published_posts"`
	Players         int           `json:"players"`
	UpcomingMatches int           `json:"upcoming_matches"`
	Results         int           `json:"results"`
	NextMatch       *matchDTO     `json:"next_match,omitempty"`
	LastResult      *resultDTO    `json:"last_result,omitempty"`
	Visits          visitStatsDTO `json:"visits"`
}
