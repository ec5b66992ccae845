package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRateLimit)

	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/jobs", func(r chi.Router) {
		r.Get("/", h.listJobs)
		r.Post("/acl/{route}", h.scheduleAclSync)
		r.Post("/acl/{route}/run", h.runAclSync)
		r.Delete("/{handle}", h.cancelJob)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
