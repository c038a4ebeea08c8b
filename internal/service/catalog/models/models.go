package models

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// ServiceResponse услуга салона
type ServiceResponse struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	MinDuration int      `json:"min_duration"`
	MaxDuration int      `json:"max_duration"`
	Step        int      `json:"step"`
	PriceFrom   *float64 `json:"price_from"`
}

// OpeningHoursResponse часы работы одного дня
type OpeningHoursResponse struct {
	Period string `json:"period"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// FromDomainService конвертирует domain.Service в ServiceResponse
func FromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		Key:         s.Key,
		Title:       s.Title,
		MinDuration: s.MinDuration,
		MaxDuration: s.MaxDuration,
		Step:        s.Step,
		PriceFrom:   s.PriceFrom,
	}
}
