package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория терминов
type AppointmentRepository interface {
	// GetByDate получает термины на дату (по умолчанию только активные)
	GetByDate(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ServiceCatalog каталог услуг салона
type ServiceCatalog interface {
	Find(key string) (domain.Service, bool)
}

// Scheduler генератор свободных слотов
type Scheduler interface {
	ParseDate(date string) (time.Time, error)
	AvailableSlots(date time.Time, durationMinutes int, existing []*domain.Appointment) ([]domain.Interval, error)
}

// MetricsRecorder счетчики запросов доступности
type MetricsRecorder interface {
	IncAvailabilityRequest(service string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
