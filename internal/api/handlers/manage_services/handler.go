package manage_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgMissingFields      = "обязательны поля name и durationMinutes"
	msgInvalidData        = "некорректные данные услуги"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceInUse       = "на услугу есть записи, удалить ее нельзя"
	msgTenantNotFound     = "тенант не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /services
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
		return
	}

	result, err := h.service.List(r.Context(), tenant.ID)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: tenant=%s, error=%v", tenant.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved: tenant=%s, count=%d", tenant.ID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
		return
	}

	var req ServiceRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		h.respondBodyError(w, err)
		return
	}

	result, err := h.service.Create(r.Context(), tenant.ID, req.ToCreateRequest())
	if err != nil {
		h.respondServiceError(w, "POST /services", tenant.ID, err)
		return
	}

	h.logger.Info("POST /services - Service created successfully: tenant=%s, id=%d", tenant.ID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /services/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req ServiceRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		h.respondBodyError(w, err)
		return
	}

	result, err := h.service.Update(r.Context(), tenant.ID, id, req.ToUpdateRequest())
	if err != nil {
		h.respondServiceError(w, "PUT /services/{id}", tenant.ID, err)
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated successfully: tenant=%s, id=%d", tenant.ID, id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /services/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.Delete(r.Context(), tenant.ID, id); err != nil {
		h.respondServiceError(w, "DELETE /services/{id}", tenant.ID, err)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted successfully: tenant=%s, id=%d", tenant.ID, id)
	handlers.RespondJSON(w, http.StatusOK, DeleteResponse{OK: true})
}

func (h *Handler) respondBodyError(w http.ResponseWriter, err error) {
	if errors.Is(err, handlers.ErrValidation) {
		handlers.RespondBadRequest(w, msgInvalidData)
		return
	}
	handlers.RespondBadRequest(w, msgInvalidRequestBody)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route, tenantID string, err error) {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: tenant=%s", route, tenantID)
		handlers.RespondNotFound(w, handlers.CodeNotFound, msgServiceNotFound)

	case errors.Is(err, catalog.ErrServiceInUse):
		h.logger.Warn("%s - Service in use: tenant=%s", route, tenantID)
		handlers.RespondConflict(w, handlers.CodeServiceInUse, msgServiceInUse)

	case errors.Is(err, catalog.ErrMissingField):
		h.logger.Warn("%s - Missing field: tenant=%s, %v", route, tenantID, err)
		handlers.RespondMissingField(w, msgMissingFields)

	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: tenant=%s, %v", route, tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	default:
		h.logger.Error("%s - Failed: tenant=%s, error=%v", route, tenantID, err)
		handlers.RespondInternalError(w)
	}
}
