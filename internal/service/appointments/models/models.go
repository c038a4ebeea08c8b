package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// ListByDateRequest запрос на получение терминов за дату
type ListByDateRequest struct {
	Date            string  `json:"date"`
	Status          *string `json:"status,omitempty"`
	IncludeInactive bool    `json:"include_inactive,omitempty"`
}

// AppointmentResponse публичные данные термина
// Контакты клиента (имя, телефон, email, заметки) наружу не отдаются
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	Service         string    `json:"service"`
	DurationMinutes int       `json:"duration_minutes"`
	Date            string    `json:"date"`       // "2024-01-01"
	StartTime       string    `json:"start_time"` // "09:00"
	EndTime         *string   `json:"end_time"`   // null для старых записей
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AppointmentListResponse список терминов
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует domain.Appointment в AppointmentResponse
func FromDomainAppointment(ap *domain.Appointment) *AppointmentResponse {
	if ap == nil {
		return nil
	}

	var endTime *string
	if ap.HasEndTime() {
		s := ap.EndTime.String()
		endTime = &s
	}

	return &AppointmentResponse{
		ID:              ap.ID,
		Service:         ap.Service,
		DurationMinutes: ap.DurationMinutes,
		Date:            ap.Date.Format(domain.DateFormat),
		StartTime:       ap.StartTime.String(),
		EndTime:         endTime,
		Status:          string(ap.Status),
		CreatedAt:       ap.CreatedAt,
		UpdatedAt:       ap.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список терминов
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(list))
	for _, ap := range list {
		if ap == nil {
			continue
		}
		result = append(result, *FromDomainAppointment(ap))
	}

	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !domain.IsValidStatus(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s, nil
}
