package middleware

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// TenantRepository загрузка тенанта по идентификатору
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
