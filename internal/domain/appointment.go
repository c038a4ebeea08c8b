package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed  AppointmentStatus = "potrjeno"
	StatusCancelled  AppointmentStatus = "preklicano"
	StatusInProgress AppointmentStatus = "v_procesu"
)

// Appointment represents a booked salon appointment
type Appointment struct {
	ID              int64
	Service         string
	DurationMinutes int
	Date            time.Time // calendar date, time part is ignored
	StartTime       types.TimeString
	EndTime         *types.TimeString // nil for legacy rows without a computed end
	Name            string
	Phone           string
	Email           *string
	Notes           *string
	Status          AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies time in the schedule
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// HasEndTime returns true if the appointment carries a concrete end time
func (a *Appointment) HasEndTime() bool {
	return a.EndTime != nil && !a.EndTime.IsZero()
}

// AppointmentsFilter фильтр для получения терминов на дату
type AppointmentsFilter struct {
	Date            time.Time          // Обязательный параметр, учитывается только дата
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные термины
}

// IsValidStatus checks that s is a known status
func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusInProgress:
		return true
	default:
		return false
	}
}
