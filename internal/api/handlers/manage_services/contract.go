package manage_services

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context, tenantID string) ([]models.ServiceResponse, error)
	Create(ctx context.Context, tenantID string, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
	Update(ctx context.Context, tenantID string, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error)
	Delete(ctx context.Context, tenantID string, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
