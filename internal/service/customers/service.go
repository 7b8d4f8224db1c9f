package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	customerRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-AgendaService/internal/service/customers/models"
)

// Service сервис клиентов тенанта
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Check ищет клиента по телефону
func (s *Service) Check(ctx context.Context, tenantID string, req *models.CheckRequest) (*models.CheckResponse, error) {
	phone, err := validatePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByPhone(ctx, tenantID, phone)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return &models.CheckResponse{Exists: false, NeedName: true}, nil
		}
		s.logger.Error("Check: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: Check - repository error: %v", ErrInternal, err)
	}

	return &models.CheckResponse{
		Exists:   true,
		Customer: &models.CustomerSummary{ID: customer.ID, Name: customer.Name},
	}, nil
}

// Create регистрирует нового клиента с нулевым числом визитов
func (s *Service) Create(ctx context.Context, tenantID string, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	phone, err := validatePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	if len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	s.logger.Info("Create: creating customer for tenant=%s", tenantID)

	created, err := s.customerRepo.Create(ctx, &domain.Customer{
		TenantID: tenantID,
		Phone:    phone,
		Name:     name,
	})
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerAlreadyExists) {
			s.logger.Warn("Create: customer with this phone already exists for tenant=%s", tenantID)
			return nil, ErrCustomerAlreadyExists
		}
		s.logger.Error("Create: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created customer id=%d for tenant=%s", created.ID, tenantID)
	return models.FromDomainCustomer(created), nil
}

func validatePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", fmt.Errorf("%w: phone", ErrMissingField)
	}
	if len(phone) > domain.MaxPhoneLength {
		return "", fmt.Errorf("%w: phone is longer than %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}
	return phone, nil
}
