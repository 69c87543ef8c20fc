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
	router.Use(withGZip)

	// the health probe sits outside /api so the hosting platform can reach
	// it without CORS preflight
	router.Get("/health", h.health)

	router.Route("/api", func(r chi.Router) {
		r.Use(h.withCORS)
		r.Use(h.countRequests)

		r.Post("/chat", h.chat)

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", h.listProperties)
			r.Get("/search", h.searchProperties)
			r.Get("/filter-options", h.filterOptions)
			r.Get("/stats", h.catalogStats)
		})

		r.Post("/guardar_contacto", h.saveContact)

		r.Get("/status", h.status)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.adminLogin)

			r.Group(func(r chi.Router) {
				r.Use(h.adminAuth)

				r.Route("/contacts", func(r chi.Router) {
					r.Get("/", h.listContacts)
					r.Post("/", h.createContact)
					r.Delete("/", h.clearContacts)
					r.Get("/stats", h.contactStats)
					r.Get("/export", h.exportContacts)
					r.Get("/{timestamp}", h.getContact)
					r.Put("/{timestamp}", h.updateContact)
					r.Delete("/{timestamp}", h.deleteContact)
				})
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
