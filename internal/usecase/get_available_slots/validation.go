package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Service) == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration_minutes must be positive", ErrInvalidInput)
	}

	return nil
}
