package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog/models"
)

// Service сервис каталога услуг тенанта
type Service struct {
	serviceRepo ServiceRepository
	txManager   TransactionManager
	cache       AvailabilityCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса. cache может быть nil.
func NewService(serviceRepo ServiceRepository, txManager TransactionManager, cache AvailabilityCache, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		txManager:   txManager,
		cache:       cache,
		logger:      logger,
	}
}

// List услуги тенанта
func (s *Service) List(ctx context.Context, tenantID string) ([]models.ServiceResponse, error) {
	services, err := s.serviceRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		s.logger.Error("List: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(services), nil
}

// Create создает услугу
func (s *Service) Create(ctx context.Context, tenantID string, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service for tenant=%s", tenantID)

	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}
	if req.DurationMinutes == nil {
		return nil, fmt.Errorf("%w: durationMinutes", ErrMissingField)
	}
	if err := validateDuration(*req.DurationMinutes); err != nil {
		return nil, err
	}

	price := 0
	if req.Price != nil {
		price = *req.Price
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		TenantID:        tenantID,
		Name:            name,
		DurationMinutes: *req.DurationMinutes,
		Price:           price,
	})
	if err != nil {
		s.logger.Error("Create: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "Create", tenantID)

	s.logger.Info("Create: successfully created service id=%d for tenant=%s", created.ID, tenantID)
	return models.FromDomainService(created), nil
}

// Update частично обновляет услугу
func (s *Service) Update(ctx context.Context, tenantID string, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d for tenant=%s", id, tenantID)

	var updated *domain.Service

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		service, err := s.serviceRepo.GetByID(txCtx, tenantID, id)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("%w: Update - get service: %v", ErrInternal, err)
		}

		if req.Name != nil {
			if service.Name, err = validateName(*req.Name); err != nil {
				return err
			}
		}
		if req.DurationMinutes != nil {
			if err := validateDuration(*req.DurationMinutes); err != nil {
				return err
			}
			service.DurationMinutes = *req.DurationMinutes
		}
		if req.Price != nil {
			if err := validatePrice(*req.Price); err != nil {
				return err
			}
			service.Price = *req.Price
		}

		if err := s.serviceRepo.Update(txCtx, service); err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("%w: Update - update service: %v", ErrInternal, err)
		}

		updated = service
		return nil
	})
	if err != nil {
		return nil, s.mapTxError("Update", tenantID, err)
	}

	s.invalidate(ctx, "Update", tenantID)

	s.logger.Info("Update: successfully updated service id=%d for tenant=%s", id, tenantID)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу. Услугу с записями удалить нельзя: записи потеряли бы длительность и название.
func (s *Service) Delete(ctx context.Context, tenantID string, id int64) error {
	s.logger.Info("Delete: deleting service id=%d for tenant=%s", id, tenantID)

	err := s.serviceRepo.Delete(ctx, tenantID, id)
	switch {
	case err == nil:
	case errors.Is(err, catalogRepo.ErrServiceNotFound):
		s.logger.Warn("Delete: service id=%d not found for tenant=%s", id, tenantID)
		return ErrServiceNotFound
	case errors.Is(err, catalogRepo.ErrServiceInUse):
		s.logger.Warn("Delete: service id=%d has appointments", id)
		return ErrServiceInUse
	default:
		s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "Delete", tenantID)

	s.logger.Info("Delete: successfully deleted service id=%d", id)
	return nil
}

func (s *Service) mapTxError(op, tenantID string, err error) error {
	switch {
	case errors.Is(err, ErrServiceNotFound),
		errors.Is(err, ErrMissingField),
		errors.Is(err, ErrInvalidInput):
		s.logger.Warn("%s: tenant=%s: %v", op, tenantID, err)
		return err
	case errors.Is(err, ErrInternal):
		s.logger.Error("%s: tenant=%s: %v", op, tenantID, err)
		return err
	default:
		s.logger.Error("%s: transaction failed for tenant=%s: %v", op, tenantID, err)
		return fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
	}
}

func (s *Service) invalidate(ctx context.Context, op, tenantID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, tenantID); err != nil {
		s.logger.Warn("%s: failed to invalidate availability cache: %v", op, err)
	}
}
