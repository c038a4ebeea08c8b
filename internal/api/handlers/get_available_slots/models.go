package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
)

// AvailabilityRequest HTTP request model
type AvailabilityRequest struct {
	Date            string `json:"date" validate:"required"` // "2024-01-01"
	Service         string `json:"service" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	Start string `json:"start"` // "08:00"
	End   string `json:"end"`   // "08:30"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AvailabilityRequest) ToUseCaseRequest() *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		Date:            r.Date,
		Service:         r.Service,
		DurationMinutes: r.DurationMinutes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в список слотов
func FromUseCaseResponse(resp *getAvailableSlots.Response) []SlotResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			Start: s.Start.String(),
			End:   s.End.String(),
		}
	}
	return slots
}
