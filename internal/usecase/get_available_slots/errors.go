package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidDate возвращается, если дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidDuration возвращается, когда длительность не подходит услуге
	ErrInvalidDuration = errors.New("get_available_slots: duration not allowed for service")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
