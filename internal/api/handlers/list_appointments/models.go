package list_appointments

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
// date обязателен; status и include_inactive опциональны
func ToServiceRequest(query url.Values) (*models.ListByDateRequest, error) {
	date := query.Get("date")
	if date == "" {
		return nil, errors.New("date is required")
	}

	req := &models.ListByDateRequest{Date: date}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("include_inactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid include_inactive %q: %w", raw, err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
