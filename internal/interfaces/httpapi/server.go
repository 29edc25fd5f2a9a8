package httpapi

import (
	"net/http"
	"net/netip"

	"github.com/riskibarqy/club-website/internal/platform/logging"
)

type RouterConfig struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	// LoginLimiter and VisitLimiter throttle the unauthenticated write
	// endpoints per client IP. Nil disables the limit.
	LoginLimiter *IPRateLimiter
	VisitLimiter *IPRateLimiter
	// TrustedProxies are the peers whose forwarding headers name the client.
	TrustedProxies []netip.Prefix
}

func NewRouter(handler *Handler, auth SessionAuthenticator, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.SwaggerEnabled)
	registerPublicRoutes(mux, handler, cfg.VisitLimiter)
	registerAuthRoutes(mux, handler, auth, cfg.LoginLimiter)
	registerAdminRoutes(mux, handler, auth)

	return RequestTracing(ClientIP(cfg.TrustedProxies, RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
