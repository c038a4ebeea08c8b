package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Date            string // Дата в формате YYYY-MM-DD
	Service         string // Ключ услуги из каталога
	DurationMinutes int    // Желаемая длительность в минутах
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	Service         string    // Ключ услуги
	DurationMinutes int       // Длительность каждого слота
	Slots           []Slot    // Свободные слоты в порядке времени начала
}

// Slot свободный интервал
type Slot struct {
	Start types.TimeString
	End   types.TimeString
}
