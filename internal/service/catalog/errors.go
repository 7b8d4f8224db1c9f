package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена у тенанта
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceInUse возвращается при удалении услуги, на которую есть записи
	ErrServiceInUse = errors.New("service has appointments and cannot be deleted")

	// ErrMissingField возвращается, когда не передано обязательное поле
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidInput возвращается при некорректных значениях полей
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
