package get_tenant

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/tenants/models"
)

type TenantService interface {
	Me(tenant *domain.Tenant) *models.TenantResponse
}
