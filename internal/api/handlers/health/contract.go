package health

import "context"

// Pinger зависимость, доступность которой проверяет /ready
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingerFunc адаптер функции к Pinger
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

type Logger interface {
	Warn(format string, v ...interface{})
}
