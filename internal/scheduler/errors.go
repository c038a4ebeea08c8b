package scheduler

import "errors"

var (
	// ErrInvalidDateTime возвращается, если дату или время не удалось распарсить
	ErrInvalidDateTime = errors.New("scheduler: invalid date or time")

	// ErrClosedDay возвращается, если в этот день недели салон не работает
	ErrClosedDay = errors.New("scheduler: closed on this day")

	// ErrOutsideHours возвращается, если интервал не помещается в часы работы
	ErrOutsideHours = errors.New("scheduler: outside opening hours")

	// ErrConflict возвращается, если интервал пересекается с существующим термином
	ErrConflict = errors.New("scheduler: interval conflicts with an existing appointment")

	// ErrIncompleteBooking возвращается, если у существующего термина нет времени окончания
	// Это ошибка данных, а не ошибка валидации запроса
	ErrIncompleteBooking = errors.New("scheduler: existing appointment has no end time")

	// ErrCorruptBooking возвращается, если время существующего термина не парсится
	ErrCorruptBooking = errors.New("scheduler: existing appointment has malformed time")

	// ErrInvalidDuration возвращается при неположительной длительности
	ErrInvalidDuration = errors.New("scheduler: duration must be positive")
)

// Kind машинно-различимый тип ошибки валидации
type Kind string

const (
	KindInvalidDateTime Kind = "invalid_datetime"
	KindClosedDay       Kind = "closed_day"
	KindOutsideHours    Kind = "outside_hours"
	KindConflict        Kind = "conflict"
	KindInvalidDuration Kind = "invalid_duration"
	KindUnknown         Kind = ""
)

// KindOf возвращает тип ошибки валидации или KindUnknown
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidDateTime):
		return KindInvalidDateTime
	case errors.Is(err, ErrClosedDay):
		return KindClosedDay
	case errors.Is(err, ErrOutsideHours):
		return KindOutsideHours
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrInvalidDuration):
		return KindInvalidDuration
	default:
		return KindUnknown
	}
}
