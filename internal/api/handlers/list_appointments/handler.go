package list_appointments

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/appointments"
	"github.com/m04kA/SMC-AgendaService/internal/service/appointments/models"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidMonth   = "некорректный формат месяца, ожидается YYYY-MM"
	msgMissingStart   = "параметр start обязателен (YYYY-MM-DD)"
	msgMissingMonth   = "параметр month обязателен (YYYY-MM)"
	msgTenantNotFound = "тенант не найден"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// listFunc одна из выборок сервиса: день, неделя или месяц
type listFunc func(ctx context.Context, tenantID, param string) (*models.AppointmentListResponse, error)

// HandleDay GET /appointments/day?date=YYYY-MM-DD (без date: сегодня по UTC)
func (h *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /appointments/day", "date", h.service.Day, msgInvalidDate, msgInvalidDate)
}

// HandleWeek GET /appointments/week?start=YYYY-MM-DD
func (h *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /appointments/week", "start", h.service.Week, msgInvalidDate, msgMissingStart)
}

// HandleMonth GET /appointments/month?month=YYYY-MM
func (h *Handler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /appointments/month", "month", h.service.Month, msgInvalidMonth, msgMissingMonth)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, route, param string, list listFunc, msgInvalid, msgMissing string) {
	tenant, ok := middleware.GetTenant(r.Context())
	if !ok {
		handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
		return
	}

	value := r.URL.Query().Get(param)

	result, err := list(r.Context(), tenant.ID, value)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidFormat):
			h.logger.Warn("%s - Invalid %s: tenant=%s, value=%q", route, param, tenant.ID, value)
			handlers.RespondInvalidFormat(w, msgInvalid)

		case errors.Is(err, appointments.ErrMissingField):
			h.logger.Warn("%s - Missing %s: tenant=%s", route, param, tenant.ID)
			handlers.RespondMissingField(w, msgMissing)

		default:
			h.logger.Error("%s - Failed to list appointments: tenant=%s, error=%v", route, tenant.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Appointments retrieved: tenant=%s, from=%s, to=%s, count=%d",
		route, tenant.ID, result.From, result.To, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
