package manage_customers

import "github.com/m04kA/SMC-AgendaService/internal/service/customers/models"

// CheckCustomerRequest HTTP request model
type CheckCustomerRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// CreateCustomerRequest HTTP request model
type CreateCustomerRequest struct {
	Phone string `json:"phone" validate:"required"`
	Name  string `json:"name" validate:"required"`
}

func (r *CheckCustomerRequest) ToServiceRequest() *models.CheckRequest {
	return &models.CheckRequest{Phone: r.Phone}
}

func (r *CreateCustomerRequest) ToServiceRequest() *models.CreateCustomerRequest {
	return &models.CreateCustomerRequest{Phone: r.Phone, Name: r.Name}
}
