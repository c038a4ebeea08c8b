package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда термин не найден
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrLockRequiresTx возвращается, если блокировку даты пытаются взять вне транзакции
	ErrLockRequiresTx = errors.New("appointment.repository: date lock requires a transaction")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
