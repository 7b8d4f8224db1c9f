package catalog

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Service, error)
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	Delete(ctx context.Context, tenantID string, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// AvailabilityCache кэш недельной доступности, содержит каталог услуг
type AvailabilityCache interface {
	Invalidate(ctx context.Context, tenantID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
