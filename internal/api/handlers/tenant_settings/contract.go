package tenant_settings

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/tenants/models"
)

type SettingsService interface {
	GetSettings(ctx context.Context, tenantID string) (*models.SettingsResponse, error)
	UpdateSettings(ctx context.Context, tenantID string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
