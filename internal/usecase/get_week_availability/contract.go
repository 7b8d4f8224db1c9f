package get_week_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	GetByDomain(ctx context.Context, host string) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByTenantWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Service, error)
}

// Cache кэш готового ответа по (тенант, день начала окна)
type Cache interface {
	Get(ctx context.Context, tenantID string, day time.Time) ([]byte, bool, error)
	Set(ctx context.Context, tenantID string, day time.Time, payload []byte) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
