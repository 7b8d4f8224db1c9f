package appointment

import "errors"

var (
	// ErrTimeConflict возвращается, когда интервал пересекается с существующей записью (exclusion constraint)
	ErrTimeConflict = errors.New("appointment.repository: time conflict")

	// ErrTransaction возвращается при вызове операции, требующей транзакции, вне её
	ErrTransaction = errors.New("appointment.repository: transaction required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
