package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория терминов
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByDate(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// DateParser парсит дату в часовом поясе салона
type DateParser interface {
	ParseDate(date string) (time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
