package http

import (
	"net/http"

	"github.com/MKhiriev/items-api/internal/utils"
	"github.com/MKhiriev/items-api/models"
)

// root serves the unauthenticated service banner.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.RootResponse{
		Message: "Items API",
		Docs:    "/docs",
		Redoc:   "/redoc",
	}, http.StatusOK)
}
