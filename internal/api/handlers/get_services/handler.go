package get_services

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

type Handler struct {
	service CatalogService
}

func NewHandler(service CatalogService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.ListServices())
}
