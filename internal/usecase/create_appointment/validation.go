package create_appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduler"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Service) == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinAppointmentMinutes || req.DurationMinutes > domain.MaxAppointmentMinutes {
		return fmt.Errorf("%w: duration_minutes must be within %d..%d",
			ErrInvalidInput, domain.MinAppointmentMinutes, domain.MaxAppointmentMinutes)
	}

	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.StartTime) == "" {
		return fmt.Errorf("%w: date and start_time are required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// mapValidationError переводит ошибку планировщика в ошибку usecase
// Второе значение - причина для метрики отказов, пустая для внутренних ошибок
func mapValidationError(err error) (error, string) {
	kind := scheduler.KindOf(err)
	switch kind {
	case scheduler.KindInvalidDateTime:
		return fmt.Errorf("%w: %v", ErrInvalidDateTime, err), string(kind)
	case scheduler.KindClosedDay:
		return fmt.Errorf("%w: %v", ErrClosedDay, err), string(kind)
	case scheduler.KindOutsideHours:
		return fmt.Errorf("%w: %v", ErrOutsideHours, err), string(kind)
	case scheduler.KindConflict:
		return fmt.Errorf("%w: %v", ErrConflict, err), string(kind)
	case scheduler.KindInvalidDuration:
		return fmt.Errorf("%w: %v", ErrInvalidDuration, err), string(kind)
	default:
		return fmt.Errorf("%w: validate appointment: %v", ErrInternal, err), ""
	}
}

// normalizeOptional обрезает пробелы и заменяет пустую строку на nil
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
