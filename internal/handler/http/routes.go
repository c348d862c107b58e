package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(h.withBodyLimit)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)

		if h.images != nil {
			r.Get("/images/*", h.getImage)
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/nutrient-inference", h.inferNutrients)

		r.Get("/api/entries", h.listEntries)
		r.Post("/api/entries", h.createEntry)
		r.Get("/api/entries/{id}", h.getEntry)
		r.Put("/api/entries/{id}", h.updateEntry)
		r.Delete("/api/entries/{id}", h.deleteEntry)

		r.Get("/api/summary/daily", h.dailySummary)
		r.Get("/api/summary/weekly", h.weeklySummary)

		r.Get("/api/settings/goals", h.getGoals)
		r.Put("/api/settings/goals", h.updateGoals)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
