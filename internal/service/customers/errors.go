package customers

import "errors"

var (
	// ErrCustomerAlreadyExists возвращается, когда клиент с таким телефоном у тенанта уже есть
	ErrCustomerAlreadyExists = errors.New("customer already exists")

	// ErrMissingField возвращается, когда не передано обязательное поле
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidInput возвращается при некорректных значениях полей
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
