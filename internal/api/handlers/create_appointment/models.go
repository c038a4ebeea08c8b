package create_appointment

import (
	createAppointment "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
// end_time и status вычисляет сервер, значения из запроса игнорируются
type CreateAppointmentRequest struct {
	Service         string  `json:"service" validate:"required"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=15,max=480"`
	Date            string  `json:"date" validate:"required"`       // "2024-01-01"
	StartTime       string  `json:"start_time" validate:"required"` // "09:00"
	Name            string  `json:"name" validate:"required,max=200"`
	Phone           string  `json:"phone" validate:"required,max=50"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	Notes           *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	Status  string `json:"status"`
	ID      int64  `json:"id"`
	EndTime string `json:"end_time"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		Service:         r.Service,
		DurationMinutes: r.DurationMinutes,
		Date:            r.Date,
		StartTime:       r.StartTime,
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		Notes:           r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		Status:  resp.Status,
		ID:      resp.ID,
		EndTime: resp.EndTime.String(),
	}
}
