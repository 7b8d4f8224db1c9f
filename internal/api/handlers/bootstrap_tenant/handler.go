package bootstrap_tenant

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/tenants"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "поля name и tenant_id обязательны"
	msgInvalidTenantID    = "некорректный tenant_id: латиница, цифры и дефис"
	msgAlreadyExists      = "тенант уже существует"
)

type Handler struct {
	service TenantService
	logger  Logger
}

func NewHandler(service TenantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /admin/bootstrap/create-tenant
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BootstrapTenantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bootstrap/create-tenant - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /admin/bootstrap/create-tenant - Missing fields: %v", err)
		handlers.RespondMissingField(w, msgMissingFields)
		return
	}

	result, err := h.service.Bootstrap(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, tenants.ErrTenantAlreadyExists):
			h.logger.Warn("POST /admin/bootstrap/create-tenant - Tenant already exists: tenant_id=%s", req.TenantID)
			handlers.RespondConflict(w, handlers.CodeConflict, msgAlreadyExists)

		case errors.Is(err, tenants.ErrMissingField):
			handlers.RespondMissingField(w, msgMissingFields)

		case errors.Is(err, tenants.ErrInvalidFormat):
			h.logger.Warn("POST /admin/bootstrap/create-tenant - Invalid tenant_id: %v", err)
			handlers.RespondInvalidFormat(w, msgInvalidTenantID)

		default:
			h.logger.Error("POST /admin/bootstrap/create-tenant - Failed to create tenant: tenant_id=%s, error=%v",
				req.TenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bootstrap/create-tenant - Tenant created successfully: tenant_id=%s", result.Tenant.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
