package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
)

const (
	msgInvalidParams = "Neveljavni parametri zahteve"
	msgInvalidDate   = "Neveljaven datum"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/appointments
// Query params: date (обязательно), status, include_inactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListByDate(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidDate):
			h.logger.Warn("GET /appointments - Invalid date: %s", serviceReq.Date)
			handlers.RespondValidationError(w, handlers.KindInvalidDateTime, msgInvalidDate)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: date=%s, error=%v", serviceReq.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved: date=%s, count=%d", serviceReq.Date, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result.Appointments)
}
