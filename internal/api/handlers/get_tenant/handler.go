package get_tenant

import (
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
)

const msgTenantNotFound = "тенант не найден"

type Handler struct {
	service TenantService
}

func NewHandler(service TenantService) *Handler {
	return &Handler{service: service}
}

// Handle GET /tenants/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.service.Me(tenant))
}
