package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidDuration возвращается, когда длительность не подходит услуге
	ErrInvalidDuration = errors.New("create_appointment: duration not allowed for service")

	// ErrInvalidDateTime возвращается, если дату или время не удалось распарсить
	ErrInvalidDateTime = errors.New("create_appointment: invalid date or time")

	// ErrClosedDay возвращается, если салон в этот день не работает
	ErrClosedDay = errors.New("create_appointment: salon is closed on this day")

	// ErrOutsideHours возвращается, если термин не помещается в часы работы
	ErrOutsideHours = errors.New("create_appointment: outside opening hours")

	// ErrConflict возвращается, если термин пересекается с уже занятым
	ErrConflict = errors.New("create_appointment: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
