package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "Neveljavna zahteva"
	msgInvalidDateTime    = "Neveljaven datum ali ura"
	msgClosedDay          = "Ta dan ne delamo"
	msgOutsideHours       = "Izven delovnega časa"
	msgConflict           = "Termin je že zaseden"
	msgServiceNotFound    = "Neznana storitev"
	msgInvalidDuration    = "Neveljavno trajanje za izbrano storitev"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /appointments - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrConflict):
			h.logger.Warn("POST /appointments - Slot taken: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, createAppointment.ErrInvalidDateTime):
			h.logger.Warn("POST /appointments - Invalid date or time: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondValidationError(w, handlers.KindInvalidDateTime, msgInvalidDateTime)

		case errors.Is(err, createAppointment.ErrClosedDay):
			h.logger.Warn("POST /appointments - Closed day: date=%s", req.Date)
			handlers.RespondValidationError(w, handlers.KindClosedDay, msgClosedDay)

		case errors.Is(err, createAppointment.ErrOutsideHours):
			h.logger.Warn("POST /appointments - Outside hours: date=%s, time=%s, duration=%d",
				req.Date, req.StartTime, req.DurationMinutes)
			handlers.RespondValidationError(w, handlers.KindOutsideHours, msgOutsideHours)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service=%s", req.Service)
			handlers.RespondValidationError(w, handlers.KindServiceNotFound, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDuration):
			h.logger.Warn("POST /appointments - Invalid duration: service=%s, duration=%d", req.Service, req.DurationMinutes)
			handlers.RespondValidationError(w, handlers.KindInvalidDuration, msgInvalidDuration)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, date=%s, %s-%s",
		result.ID, req.Date, result.StartTime, result.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
