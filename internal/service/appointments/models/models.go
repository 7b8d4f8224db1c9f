package models

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// ServiceSummary услуга записи
type ServiceSummary struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// CustomerSummary клиент записи
type CustomerSummary struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Visits int    `json:"visits"`
}

// AppointmentResponse запись с вложенными клиентом и услугой.
// Customer/Service равны nil, если связанная строка не найдена.
type AppointmentResponse struct {
	ID        int64            `json:"id"`
	Date      string           `json:"date"`      // "2025-11-29"
	StartTime string           `json:"startTime"` // "10:00"
	EndTime   string           `json:"endTime"`
	Blocks    int              `json:"blocks"`
	CreatedAt time.Time        `json:"createdAt"`
	Service   *ServiceSummary  `json:"service"`
	Customer  *CustomerSummary `json:"customer"`
}

// AppointmentListResponse записи за диапазон [From, To)
type AppointmentListResponse struct {
	From         string                `json:"from"`
	To           string                `json:"to"` // не включительно
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.AppointmentDetails) AppointmentResponse {
	resp := AppointmentResponse{
		ID:        a.ID,
		Date:      a.Date.Format(domain.DateFormat),
		StartTime: a.StartTime.String(),
		EndTime:   a.EndTime.String(),
		Blocks:    a.Blocks,
		CreatedAt: a.CreatedAt,
	}

	if a.Service != nil {
		resp.Service = &ServiceSummary{
			ID:              a.Service.ID,
			Name:            a.Service.Name,
			DurationMinutes: a.Service.DurationMinutes,
		}
	}

	if a.Customer != nil {
		resp.Customer = &CustomerSummary{
			ID:     a.Customer.ID,
			Name:   a.Customer.Name,
			Phone:  a.Customer.Phone,
			Visits: a.Customer.Visits,
		}
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(r types.DateRange, list []*domain.AppointmentDetails) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		From:         r.From.Format(domain.DateFormat),
		To:           r.To.Format(domain.DateFormat),
		Appointments: make([]AppointmentResponse, 0, len(list)),
	}

	for _, a := range list {
		resp.Appointments = append(resp.Appointments, FromDomainAppointment(a))
	}

	return resp
}
