package manage_customers

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/customers/models"
)

type CustomerService interface {
	Check(ctx context.Context, tenantID string, req *models.CheckRequest) (*models.CheckResponse, error)
	Create(ctx context.Context, tenantID string, req *models.CreateCustomerRequest) (*models.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
