package manage_services

import "github.com/m04kA/SMC-AgendaService/internal/service/catalog/models"

// ServiceRequest HTTP request model для создания и обновления услуги.
// Длительность принимается под любым из имен durationMinutes, duration_minutes, duration.
type ServiceRequest struct {
	Name               *string `json:"name"`
	DurationMinutes    *int    `json:"durationMinutes"`
	DurationMinutesAlt *int    `json:"duration_minutes"`
	Duration           *int    `json:"duration"`
	Price              *int    `json:"price" validate:"omitempty,gte=0"`
}

// DeleteResponse ответ на удаление
type DeleteResponse struct {
	OK bool `json:"ok"`
}

func (r *ServiceRequest) duration() *int {
	switch {
	case r.DurationMinutes != nil:
		return r.DurationMinutes
	case r.DurationMinutesAlt != nil:
		return r.DurationMinutesAlt
	default:
		return r.Duration
	}
}

// ToCreateRequest конвертирует HTTP запрос в модель сервиса
func (r *ServiceRequest) ToCreateRequest() *models.CreateServiceRequest {
	req := &models.CreateServiceRequest{
		DurationMinutes: r.duration(),
		Price:           r.Price,
	}
	if r.Name != nil {
		req.Name = *r.Name
	}
	return req
}

// ToUpdateRequest конвертирует HTTP запрос в частичное обновление
func (r *ServiceRequest) ToUpdateRequest() *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		Name:            r.Name,
		DurationMinutes: r.duration(),
		Price:           r.Price,
	}
}
