package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduler"
)

// AppointmentRepository интерфейс репозитория терминов
type AppointmentRepository interface {
	LockDate(ctx context.Context, date string) error
	GetByDate(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Create(ctx context.Context, ap *domain.Appointment) (*domain.Appointment, error)
}

// ServiceCatalog каталог услуг салона
type ServiceCatalog interface {
	Find(key string) (domain.Service, bool)
}

// Scheduler проверка предлагаемого термина
type Scheduler interface {
	ParseDate(date string) (time.Time, error)
	Validate(p scheduler.Proposal, existing []*domain.Appointment) (domain.Interval, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счетчики созданных и отклоненных терминов
type MetricsRecorder interface {
	IncAppointmentCreated(service string)
	IncAppointmentRejected(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
