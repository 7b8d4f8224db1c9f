package tenants

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	UpdateSettings(ctx context.Context, tenant *domain.Tenant) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// AvailabilityCache кэш недельной доступности, хранит бизнес-часы тенанта
type AvailabilityCache interface {
	Invalidate(ctx context.Context, tenantID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
