package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/club-website/internal/usecase"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "admin login failed", "username", req.Username, "ip", requestClientIP(r), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, loginDTO{
		Token:     res.Token,
		Username:  res.Username,
		ExpiresAt: res.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Me")
	defer span.End()

	sess, ok := sessionFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: session is missing from request context", usecase.ErrUnauthorized))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, meDTO{
		Username:  sess.Username,
		ExpiresAt: sess.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	token, err := bearerToken(r)
	if err == nil {
		if err := h.authService.Logout(ctx, token); err != nil {
			h.logger.ErrorContext(ctx, "admin logout failed", "error", err)
			writeError(ctx, w, err)
			return
		}
	}
	writeSuccess(ctx, w, http.StatusOK, successBody{Success: true})
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

type loginDTO struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresAt string `json:"expiresAt"`
}

type meDTO struct {
	Username  string `json:"username"`
	ExpiresAt string `json:"expiresAt"`
}
