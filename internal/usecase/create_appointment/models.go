package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса на создание термина
type Request struct {
	Service         string  // Ключ услуги из каталога
	DurationMinutes int     // Длительность в минутах
	Date            string  // Дата в формате YYYY-MM-DD
	StartTime       string  // Время начала HH:MM
	Name            string  // Имя и фамилия клиента
	Phone           string  // Телефон
	Email           *string // E-mail (опционально)
	Notes           *string // Заметки (опционально)
}

// Response модель ответа с созданным термином
type Response struct {
	Status          string           // Всегда "ok"
	ID              int64            // ID созданного термина
	Service         string           // Ключ услуги
	Date            time.Time        // Дата термина
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания, вычисленное сервером
	DurationMinutes int              // Длительность в минутах
	CreatedAt       time.Time        // Время создания
}
