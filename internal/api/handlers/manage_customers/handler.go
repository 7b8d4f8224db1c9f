package manage_customers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/customers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPhoneRequired      = "поле phone обязательно"
	msgPhoneNameRequired  = "поля phone и name обязательны"
	msgInvalidData        = "некорректные данные клиента"
	msgAlreadyExists      = "клиент с таким телефоном уже существует"
	msgTenantNotFound     = "тенант не найден"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCheck POST /customers/check
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
		return
	}

	var req CheckCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondMissingField(w, msgPhoneRequired)
		return
	}

	result, err := h.service.Check(r.Context(), tenant.ID, req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /customers/check", tenant.ID, err, msgPhoneRequired)
		return
	}

	h.logger.Info("POST /customers/check - Checked: tenant=%s, exists=%t", tenant.ID, result.Exists)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /customers/create
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
		return
	}

	var req CreateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers/create - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /customers/create - Missing fields: tenant=%s, %v", tenant.ID, err)
		handlers.RespondMissingField(w, msgPhoneNameRequired)
		return
	}

	result, err := h.service.Create(r.Context(), tenant.ID, req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /customers/create", tenant.ID, err, msgPhoneNameRequired)
		return
	}

	h.logger.Info("POST /customers/create - Customer created successfully: tenant=%s, id=%d", tenant.ID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route, tenantID string, err error, msgMissing string) {
	switch {
	case errors.Is(err, customers.ErrCustomerAlreadyExists):
		h.logger.Warn("%s - Customer already exists: tenant=%s", route, tenantID)
		handlers.RespondConflict(w, handlers.CodeConflict, msgAlreadyExists)

	case errors.Is(err, customers.ErrMissingField):
		handlers.RespondMissingField(w, msgMissing)

	case errors.Is(err, customers.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: tenant=%s, %v", route, tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	default:
		h.logger.Error("%s - Failed: tenant=%s, error=%v", route, tenantID, err)
		handlers.RespondInternalError(w)
	}
}
