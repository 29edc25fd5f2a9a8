package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/club-website/internal/platform/logging"
	"github.com/riskibarqy/club-website/internal/usecase"
)

// Services groups the usecases the HTTP layer talks to.
type Services struct {
	Blog      *usecase.BlogService
	Players   *usecase.PlayerService
	Matches   *usecase.MatchService
	Results   *usecase.ResultService
	Visits    *usecase.VisitService
	Auth      *usecase.AuthService
	Dashboard *usecase.DashboardService
}

type Handler struct {
	blogService      *usecase.BlogService
	playerService    *usecase.PlayerService
	matchService     *usecase.MatchService
	resultService    *usecase.ResultService
	visitService     *usecase.VisitService
	authService      *usecase.AuthService
	dashboardService *usecase.DashboardService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		blogService:      services.Blog,
		playerService:    services.Players,
		matchService:     services.Matches,
		resultService:    services.Results,
		visitService:     services.Visits,
		authService:      services.Auth,
		dashboardService: services.Dashboard,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON reads one JSON document into dst. Unknown fields are a client
// mistake (400); anything that is not JSON at all is a malformed payload.
func (h *Handler) decodeJSON(ctx context.Context, r *http.Request, dst any) error {
	_, span := startSpan(ctx, "httpapi.Handler.decodeJSON")
	defer span.End()

	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if !errors.Is(err, io.EOF) && strings.Contains(err.Error(), "unknown field") {
			return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		return fmt.Errorf("%w: %v", usecase.ErrMalformedPayload, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func usecaseInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{usecase.ErrInvalidInput}, args...)...)
}
