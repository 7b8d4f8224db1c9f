package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Phone     string `json:"phone" validate:"required"`
	Name      string `json:"name"` // нужно только для нового клиента
	ServiceID int64  `json:"service_id" validate:"required"`
	Date      string `json:"date" validate:"required"`       // "2025-11-29"
	StartTime string `json:"start_time" validate:"required"` // "10:00"
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	OK          bool                `json:"ok"`
	Appointment AppointmentResponse `json:"appointment"`
}

type AppointmentResponse struct {
	ID        int64            `json:"id"`
	Date      string           `json:"date"`
	StartTime string           `json:"start_time"`
	EndTime   string           `json:"end_time"`
	Blocks    int              `json:"blocks"`
	CreatedAt string           `json:"created_at"`
	Customer  CustomerResponse `json:"customer"`
	Service   ServiceResponse  `json:"service"`
}

type CustomerResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Visits int    `json:"visits"`
}

type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(tenantID string) *createAppointment.Request {
	return &createAppointment.Request{
		TenantID:  tenantID,
		Phone:     r.Phone,
		Name:      r.Name,
		ServiceID: r.ServiceID,
		Date:      r.Date,
		StartTime: r.StartTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		OK: true,
		Appointment: AppointmentResponse{
			ID:        resp.ID,
			Date:      resp.Date.Format(domain.DateFormat),
			StartTime: resp.StartTime.String(),
			EndTime:   resp.EndTime.String(),
			Blocks:    resp.Blocks,
			CreatedAt: resp.CreatedAt.UTC().Format(time.RFC3339),
			Customer: CustomerResponse{
				ID:     resp.Customer.ID,
				Name:   resp.Customer.Name,
				Phone:  resp.Customer.Phone,
				Visits: resp.Customer.Visits,
			},
			Service: ServiceResponse{
				ID:              resp.Service.ID,
				Name:            resp.Service.Name,
				DurationMinutes: resp.Service.DurationMinutes,
			},
		},
	}
}
