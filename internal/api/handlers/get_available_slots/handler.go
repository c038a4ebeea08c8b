package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidRequestBody = "Neveljavna zahteva"
	msgInvalidDate        = "Neveljaven datum"
	msgServiceNotFound    = "Neznana storitev"
	msgInvalidDuration    = "Neveljavno trajanje za izbrano storitev"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /availability - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("POST /availability - Invalid date: date=%s", req.Date)
			handlers.RespondValidationError(w, handlers.KindInvalidDateTime, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("POST /availability - Service not found: service=%s", req.Service)
			handlers.RespondValidationError(w, handlers.KindServiceNotFound, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("POST /availability - Invalid duration: service=%s, duration=%d", req.Service, req.DurationMinutes)
			handlers.RespondValidationError(w, handlers.KindInvalidDuration, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /availability - Failed to get slots: date=%s, service=%s, error=%v",
				req.Date, req.Service, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - %d slots: date=%s, service=%s", len(result.Slots), req.Date, req.Service)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
