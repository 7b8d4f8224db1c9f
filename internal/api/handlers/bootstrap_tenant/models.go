package bootstrap_tenant

import "github.com/m04kA/SMC-AgendaService/internal/service/tenants/models"

// BootstrapTenantRequest HTTP request model
type BootstrapTenantRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

func (r *BootstrapTenantRequest) ToServiceRequest() *models.BootstrapRequest {
	return &models.BootstrapRequest{TenantID: r.TenantID, Name: r.Name}
}
