package get_week_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	getWeekAvailability "github.com/m04kA/SMC-AgendaService/internal/usecase/get_week_availability"
)

const (
	msgTenantRequired = "параметр tenant обязателен"
	msgTenantNotFound = "тенант не найден"
)

type Handler struct {
	useCase GetWeekAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /availability/week?tenant=divasspa
// Публичный endpoint: тенант передается явно, middleware Tenant не используется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant := r.URL.Query().Get("tenant")

	result, err := h.useCase.Execute(r.Context(), &getWeekAvailability.Request{Tenant: tenant})
	if err != nil {
		switch {
		case errors.Is(err, getWeekAvailability.ErrMissingField):
			h.logger.Warn("GET /availability/week - Missing tenant")
			handlers.RespondMissingField(w, msgTenantRequired)

		case errors.Is(err, getWeekAvailability.ErrTenantNotFound):
			h.logger.Warn("GET /availability/week - Tenant not found: tenant=%s", tenant)
			handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)

		default:
			h.logger.Error("GET /availability/week - Failed to get availability: tenant=%s, error=%v", tenant, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/week - Availability retrieved: tenant=%s, busy_slots=%d",
		result.TenantID, len(result.BusySlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
