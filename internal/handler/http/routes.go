package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/ping", h.ping)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/time", h.timeInZone)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/accounts/{login}", h.provisionAccount)
		r.Get("/api/accounts", h.listAccounts)
		r.Get("/api/accounts/{login}", h.getAccount)
		r.Get("/api/me", h.me)
		r.Get("/api/files/{name}", h.streamFile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
