package get_week_availability

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getWeekAvailability "github.com/m04kA/SMC-AgendaService/internal/usecase/get_week_availability"
)

// WeekAvailabilityResponse HTTP response model
type WeekAvailabilityResponse struct {
	WorkingDays []int         `json:"workingDays"`
	WeekStart   string        `json:"weekStart"`
	WeekEnd     string        `json:"weekEnd"`
	SatStart    string        `json:"satStart"`
	SatEnd      string        `json:"satEnd"`
	BusySlots   []BusySlotDTO `json:"busySlots"`
	Services    []ServiceDTO  `json:"services"`
}

// BusySlotDTO занятый 15-минутный интервал, "2025-11-29T10:00:00"
type BusySlotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ServiceDTO услуга, duration в минутах
type ServiceDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekAvailability.Response) *WeekAvailabilityResponse {
	busy := make([]BusySlotDTO, 0, len(resp.BusySlots))
	for _, slot := range resp.BusySlots {
		busy = append(busy, BusySlotDTO{
			Start: slot.Start.Format(domain.SlotTimestampFormat),
			End:   slot.End.Format(domain.SlotTimestampFormat),
		})
	}

	services := make([]ServiceDTO, 0, len(resp.Services))
	for _, s := range resp.Services {
		services = append(services, ServiceDTO{ID: s.ID, Name: s.Name, Duration: s.DurationMinutes})
	}

	return &WeekAvailabilityResponse{
		WorkingDays: resp.WorkingDays,
		WeekStart:   resp.WeekStart.String(),
		WeekEnd:     resp.WeekEnd.String(),
		SatStart:    resp.SatStart.String(),
		SatEnd:      resp.SatEnd.String(),
		BusySlots:   busy,
		Services:    services,
	}
}
