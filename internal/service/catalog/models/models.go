package models

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string `json:"name"`
	DurationMinutes *int   `json:"durationMinutes"`
	Price           *int   `json:"price,omitempty"` // по умолчанию 0
}

// UpdateServiceRequest частичное обновление услуги
type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Price           *int    `json:"price,omitempty"`
}

// Response модели

// ServiceResponse услуга
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int    `json:"price"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) []ServiceResponse {
	resp := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, *FromDomainService(s))
	}
	return resp
}
