package types

import "errors"

var (
	// ErrInvalidFormat возвращается при некорректном формате даты, времени или месяца
	ErrInvalidFormat = errors.New("types: invalid format")

	// ErrOutOfDay возвращается, когда время выходит за пределы суток
	ErrOutOfDay = errors.New("types: time is out of day bounds")
)
