package create_appointment

import "errors"

var (
	// ErrMissingField возвращается, когда не передано обязательное поле
	ErrMissingField = errors.New("create_appointment: required field is missing")

	// ErrInvalidFormat возвращается при некорректном формате даты или времени
	ErrInvalidFormat = errors.New("create_appointment: invalid date or time format")

	// ErrServiceNotFound возвращается, когда услуга не найдена у тенанта
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrNameRequired возвращается, когда клиента с таким телефоном нет и имя не передано.
	// Клиент должен повторить запрос с именем.
	ErrNameRequired = errors.New("create_appointment: customer does not exist, name is required")

	// ErrTimeConflict возвращается, когда интервал пересекается с существующей записью
	ErrTimeConflict = errors.New("create_appointment: time range overlaps with an existing appointment")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
