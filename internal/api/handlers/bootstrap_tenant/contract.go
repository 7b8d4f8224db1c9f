package bootstrap_tenant

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/tenants/models"
)

type TenantService interface {
	Bootstrap(ctx context.Context, req *models.BootstrapRequest) (*models.BootstrapResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
