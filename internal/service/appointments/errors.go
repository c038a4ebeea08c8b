package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда термин не найден
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrInvalidDate возвращается, если дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("appointments: invalid date")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
