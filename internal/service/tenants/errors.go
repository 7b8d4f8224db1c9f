package tenants

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrTenantAlreadyExists возвращается при повторном создании тенанта
	ErrTenantAlreadyExists = errors.New("tenant already exists")

	// ErrMissingField возвращается, когда не передано обязательное поле
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidFormat возвращается при некорректном формате времени, дня недели или id тенанта
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidHours возвращается, когда начало рабочего дня не раньше конца
	ErrInvalidHours = errors.New("business hours start must be before end")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
