package models

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// CheckRequest запрос проверки клиента по телефону
type CheckRequest struct {
	Phone string `json:"phone"`
}

// CreateCustomerRequest запрос на создание клиента
type CreateCustomerRequest struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

// CustomerSummary краткая информация о найденном клиенте
type CustomerSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CheckResponse результат проверки.
// Для неизвестного телефона Exists=false и NeedName=true: клиенту нужно указать имя.
type CheckResponse struct {
	Exists   bool             `json:"exists"`
	Customer *CustomerSummary `json:"customer,omitempty"`
	NeedName bool             `json:"need_name,omitempty"`
}

// CustomerResponse клиент
type CustomerResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Visits int    `json:"visits"`
}

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:     c.ID,
		Name:   c.Name,
		Phone:  c.Phone,
		Visits: c.Visits,
	}
}
