package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Service, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByPhone(ctx context.Context, tenantID, phone string) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	IncrementVisits(ctx context.Context, tenantID string, id int64) (int, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	LockDay(ctx context.Context, tenantID string, date time.Time) error
	GetByTenantAndDate(ctx context.Context, tenantID string, date time.Time) ([]*domain.Appointment, error)
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// AvailabilityCache кэш недельной доступности, сбрасывается после новой записи
type AvailabilityCache interface {
	Invalidate(ctx context.Context, tenantID string) error
}

// Metrics доменные счетчики
type Metrics interface {
	IncAppointmentCreated(tenantID string)
	IncBookingConflict(tenantID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
