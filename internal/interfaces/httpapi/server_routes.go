package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler, visitLimiter *IPRateLimiter) {
	mux.HandleFunc("GET /api/blog", handler.ListPublishedPosts)
	mux.HandleFunc("GET /api/blog/{slug}", handler.GetPublishedPost)

	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("GET /api/players/{id}", handler.GetPlayer)
	mux.HandleFunc("GET /api/players/numero/{numero}", handler.GetPlayerByNumber)

	mux.HandleFunc("GET /api/partidos", handler.ListMatches)
	mux.HandleFunc("GET /api/partidos/{id}", handler.GetMatch)

	mux.HandleFunc("GET /api/resultados", handler.ListResults)
	mux.HandleFunc("GET /api/resultados/{id}", handler.GetResult)

	mux.HandleFunc("GET /api/visits", handler.GetVisitStats)
	mux.Handle("POST /api/visits", RateLimit(visitLimiter, http.HandlerFunc(handler.RecordVisit)))
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, auth SessionAuthenticator, loginLimiter *IPRateLimiter) {
	mux.Handle("POST /api/auth/login", RateLimit(loginLimiter, http.HandlerFunc(handler.Login)))
	mux.HandleFunc("POST /api/auth/logout", handler.Logout)
	mux.Handle("GET /api/auth/me", RequireSession(auth, http.HandlerFunc(handler.Me)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, auth SessionAuthenticator) {
	protect := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireSession(auth, fn))
	}

	protect("GET /api/admin/dashboard", handler.GetAdminDashboard)
	protect("GET /api/admin/blog", handler.ListAllPosts)
	protect("GET /api/admin/blog/{slug}", handler.GetPostForAdmin)

	protect("POST /api/blog", handler.CreatePost)
	protect("PUT /api/blog/{slug}", handler.UpdatePost)
	protect("DELETE /api/blog/{slug}", handler.DeletePost)

	protect("POST /api/players", handler.CreatePlayer)
	protect("PUT /api/players/{id}", handler.UpdatePlayer)
	protect("DELETE /api/players/{id}", handler.DeletePlayer)

	protect("POST /api/partidos", handler.CreateMatch)
	protect("PUT /api/partidos/{id}", handler.UpdateMatch)
	protect("DELETE /api/partidos/{id}", handler.DeleteMatch)

	protect("POST /api/resultados", handler.CreateResult)
	protect("PUT /api/resultados/{id}", handler.UpdateResult)
	protect("DELETE /api/resultados/{id}", handler.DeleteResult)
}
