package tenants

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-AgendaService/internal/service/tenants/models"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

// Service сервис тенантов: bootstrap и настройки
type Service struct {
	tenantRepo TenantRepository
	txManager  TransactionManager
	cache      AvailabilityCache
	baseDomain string
	logger     Logger
}

// NewService создает новый экземпляр сервиса. cache может быть nil.
func NewService(
	tenantRepo TenantRepository,
	txManager TransactionManager,
	cache AvailabilityCache,
	baseDomain string,
	logger Logger,
) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		txManager:  txManager,
		cache:      cache,
		baseDomain: baseDomain,
		logger:     logger,
	}
}

// Me краткие данные уже разрешенного тенанта
func (s *Service) Me(tenant *domain.Tenant) *models.TenantResponse {
	return models.FromDomainTenant(tenant)
}

// Bootstrap создает тенанта с доменом <tenant_id>.<base_domain>
func (s *Service) Bootstrap(ctx context.Context, req *models.BootstrapRequest) (*models.BootstrapResponse, error) {
	id := strings.ToLower(strings.TrimSpace(req.TenantID))
	name := strings.TrimSpace(req.Name)

	s.logger.Info("Bootstrap: creating tenant id=%s", id)

	if id == "" || name == "" {
		return nil, fmt.Errorf("%w: name and tenant_id are required", ErrMissingField)
	}
	if err := validateTenantID(id); err != nil {
		s.logger.Warn("Bootstrap: %v", err)
		return nil, err
	}
	if len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is longer than %d characters", ErrInvalidFormat, domain.MaxNameLength)
	}

	created, err := s.tenantRepo.Create(ctx, &domain.Tenant{
		ID:     id,
		Name:   name,
		Domain: ptr.Ptr(id + "." + s.baseDomain),
	})
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantAlreadyExists) {
			s.logger.Warn("Bootstrap: tenant id=%s already exists", id)
			return nil, ErrTenantAlreadyExists
		}
		s.logger.Error("Bootstrap: failed to create tenant id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Bootstrap - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Bootstrap: successfully created tenant id=%s", id)
	return &models.BootstrapResponse{OK: true, Tenant: *models.FromDomainTenant(created)}, nil
}

// GetSettings настройки тенанта
func (s *Service) GetSettings(ctx context.Context, tenantID string) (*models.SettingsResponse, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			return nil, ErrTenantNotFound
		}
		s.logger.Error("GetSettings: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(tenant), nil
}

// UpdateSettings частично обновляет настройки тенанта и возвращает итоговые
func (s *Service) UpdateSettings(ctx context.Context, tenantID string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: updating settings for tenant=%s", tenantID)

	var updated *domain.Tenant

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		tenant, err := s.tenantRepo.GetByID(txCtx, tenantID)
		if err != nil {
			if errors.Is(err, tenantRepo.ErrTenantNotFound) {
				return ErrTenantNotFound
			}
			return fmt.Errorf("%w: UpdateSettings - get tenant: %v", ErrInternal, err)
		}

		updated, err = applySettings(tenant, req)
		if err != nil {
			s.logger.Warn("UpdateSettings: validation failed for tenant=%s: %v", tenantID, err)
			return err
		}

		if err := s.tenantRepo.UpdateSettings(txCtx, updated); err != nil {
			if errors.Is(err, tenantRepo.ErrTenantNotFound) {
				return ErrTenantNotFound
			}
			return fmt.Errorf("%w: UpdateSettings - update tenant: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrTenantNotFound),
			errors.Is(err, ErrMissingField),
			errors.Is(err, ErrInvalidFormat),
			errors.Is(err, ErrInvalidHours):
			return nil, err
		case errors.Is(err, ErrInternal):
			s.logger.Error("UpdateSettings: tenant=%s: %v", tenantID, err)
			return nil, err
		default:
			s.logger.Error("UpdateSettings: transaction failed for tenant=%s: %v", tenantID, err)
			return nil, fmt.Errorf("%w: UpdateSettings - %v", ErrInternal, err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, tenantID); err != nil {
			s.logger.Warn("UpdateSettings: failed to invalidate availability cache: %v", err)
		}
	}

	s.logger.Info("UpdateSettings: successfully updated settings for tenant=%s", tenantID)
	return models.FromDomainSettings(updated), nil
}
