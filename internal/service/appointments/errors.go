package appointments

import "errors"

var (
	// ErrMissingField возвращается, когда не передан обязательный параметр (start, month)
	ErrMissingField = errors.New("missing required parameter")

	// ErrInvalidFormat возвращается при некорректном формате даты или месяца
	ErrInvalidFormat = errors.New("invalid date format")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
