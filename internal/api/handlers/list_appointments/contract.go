package list_appointments

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/appointments/models"
)

type AppointmentService interface {
	Day(ctx context.Context, tenantID, date string) (*models.AppointmentListResponse, error)
	Week(ctx context.Context, tenantID, start string) (*models.AppointmentListResponse, error)
	Month(ctx context.Context, tenantID, month string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
