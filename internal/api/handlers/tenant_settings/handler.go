package tenant_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/tenants"
	"github.com/m04kA/SMC-AgendaService/internal/service/tenants/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFormat      = "некорректный формат: часы HH:MM, рабочие дни 0..6"
	msgInvalidHours       = "начало рабочего дня должно быть раньше конца"
	msgMissingField       = "имя не может быть пустым"
	msgTenantNotFound     = "тенант не найден"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /admin/settings
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
		return
	}

	result, err := h.service.GetSettings(r.Context(), tenant.ID)
	if err != nil {
		h.respondError(w, "GET /admin/settings", tenant.ID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /admin/settings
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
		return
	}

	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSettings(r.Context(), tenant.ID, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/settings", tenant.ID, err)
		return
	}

	h.logger.Info("PUT /admin/settings - Settings updated successfully: tenant=%s", tenant.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route, tenantID string, err error) {
	switch {
	case errors.Is(err, tenants.ErrTenantNotFound):
		h.logger.Warn("%s - Tenant not found: tenant=%s", route, tenantID)
		handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)

	case errors.Is(err, tenants.ErrInvalidFormat):
		h.logger.Warn("%s - Invalid format: tenant=%s, %v", route, tenantID, err)
		handlers.RespondInvalidFormat(w, msgInvalidFormat)

	case errors.Is(err, tenants.ErrInvalidHours):
		h.logger.Warn("%s - Invalid hours: tenant=%s, %v", route, tenantID, err)
		handlers.RespondInvalidFormat(w, msgInvalidHours)

	case errors.Is(err, tenants.ErrMissingField):
		handlers.RespondMissingField(w, msgMissingField)

	default:
		h.logger.Error("%s - Failed: tenant=%s, error=%v", route, tenantID, err)
		handlers.RespondInternalError(w)
	}
}
