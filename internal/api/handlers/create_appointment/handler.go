package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "обязательны поля phone, service_id, date, start_time"
	msgInvalidFormat      = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgServiceNotFound    = "услуга не найдена"
	msgNameRequired       = "клиент не найден, для создания нужно имя"
	msgTimeConflict       = "время пересекается с существующей записью"
	msgTenantNotFound     = "тенант не найден"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /appointments - Missing fields: tenant=%s, %v", tenant.ID, err)
		handlers.RespondMissingField(w, msgMissingFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tenant.ID))
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrNameRequired):
			h.logger.Info("POST /appointments - Name required: tenant=%s", tenant.ID)
			handlers.RespondError(w, http.StatusBadRequest, handlers.CodeNameRequired, msgNameRequired)

		case errors.Is(err, createAppointment.ErrTimeConflict):
			h.logger.Warn("POST /appointments - Time conflict: tenant=%s, date=%s, start=%s",
				tenant.ID, req.Date, req.StartTime)
			handlers.RespondConflict(w, handlers.CodeTimeConflict, msgTimeConflict)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: tenant=%s, service_id=%d", tenant.ID, req.ServiceID)
			handlers.RespondNotFound(w, handlers.CodeNotFound, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidFormat):
			h.logger.Warn("POST /appointments - Invalid format: tenant=%s, %v", tenant.ID, err)
			handlers.RespondInvalidFormat(w, msgInvalidFormat)

		case errors.Is(err, createAppointment.ErrMissingField):
			h.logger.Warn("POST /appointments - Missing field: tenant=%s, %v", tenant.ID, err)
			handlers.RespondMissingField(w, msgMissingFields)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: tenant=%s, error=%v", tenant.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%d, tenant=%s", result.ID, tenant.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
