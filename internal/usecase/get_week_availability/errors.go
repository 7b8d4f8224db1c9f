package get_week_availability

import "errors"

var (
	// ErrMissingField возвращается, когда не передан идентификатор тенанта
	ErrMissingField = errors.New("get_week_availability: tenant is required")

	// ErrTenantNotFound возвращается, когда тенант не найден ни по домену, ни по id
	ErrTenantNotFound = errors.New("get_week_availability: tenant not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_week_availability: internal error")
)
