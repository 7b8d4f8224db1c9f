package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
)

const readyTimeout = 2 * time.Second

// StatusResponse ответ health/ready
type StatusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	deps   map[string]Pinger
	logger Logger
}

// NewHandler deps: имя зависимости -> проверка (например "postgres", "redis")
func NewHandler(deps map[string]Pinger, logger Logger) *Handler {
	return &Handler{
		deps:   deps,
		logger: logger,
	}
}

// HandleHealth GET /health
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleReady GET /ready
func (h *Handler) HandleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	names := make([]string, 0, len(h.deps))
	for name := range h.deps {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	resp := StatusResponse{Status: "ok", Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := h.deps[name].PingContext(ctx); err != nil {
			h.logger.Warn("GET /ready - %s is unavailable: %v", name, err)
			resp.Checks[name] = "unavailable"
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	handlers.RespondJSON(w, status, resp)
}
