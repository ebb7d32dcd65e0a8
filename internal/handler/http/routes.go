package http

import (
	"net/http"

	"github.com/MKhiriev/items-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecover)
	router.Use(h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/items", h.listItems)
		r.Post("/items", h.createItem)
		r.Get("/items/{id}", h.getItem)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "Not Found", http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	return router
}
