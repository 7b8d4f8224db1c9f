package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/customer"
)

// UseCase use case для создания записи
type UseCase struct {
	serviceRepo     ServiceRepository
	customerRepo    CustomerRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	cache           AvailabilityCache
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. cache и metrics могут быть nil.
func NewUseCase(
	serviceRepo ServiceRepository,
	customerRepo CustomerRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	cache AvailabilityCache,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		customerRepo:    customerRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		cache:           cache,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute создает запись.
// Все шаги выполняются в одной сериализуемой транзакции под advisory-блокировкой (тенант, дата):
// при любой ошибке не сохраняется ни запись, ни новый клиент, ни инкремент визитов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("CreateAppointment: tenant=%s, service=%d, date=%s, time=%s",
		req.TenantID, req.ServiceID, req.Date, req.StartTime)

	// 1. Обязательные поля
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Услуга тенанта
		service, err := uc.serviceRepo.GetByID(txCtx, req.TenantID, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%d not found for tenant=%s", req.ServiceID, req.TenantID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
		}

		// 3. Клиент по телефону
		customer, resolution, err := uc.resolveCustomer(txCtx, req.TenantID, req.Phone, req.Name)
		if err != nil {
			uc.logger.Error("CreateAppointment: %v", err)
			return err
		}
		uc.logger.Info("CreateAppointment: customer phone=%s resolved as %s", req.Phone, resolution)
		if resolution == customerNeedsName {
			return ErrNameRequired
		}

		// 4. Дата и интервал
		date, slot, err := parseSlot(req.Date, req.StartTime, service.DurationMinutes)
		if err != nil {
			uc.logger.Warn("CreateAppointment: %v", err)
			return err
		}

		// 5. Блокировка дня и проверка пересечений
		if err := uc.appointmentRepo.LockDay(txCtx, req.TenantID, date); err != nil {
			uc.logger.Error("CreateAppointment: failed to lock day %s: %v", req.Date, err)
			return fmt.Errorf("%w: failed to lock day: %w", ErrInternal, err)
		}

		sameDay, err := uc.appointmentRepo.GetByTenantAndDate(txCtx, req.TenantID, date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		if conflict := findConflict(slot, sameDay); conflict != nil {
			uc.logger.Warn("CreateAppointment: %s-%s overlaps appointment id=%d (%s-%s)",
				slot.Start, slot.End, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrTimeConflict
		}

		// 6. Новый клиент сохраняется только после проверки пересечений
		if resolution == customerCreated {
			customer, err = uc.customerRepo.Create(txCtx, customer)
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to create customer phone=%s: %v", req.Phone, err)
				return fmt.Errorf("%w: failed to create customer: %w", ErrInternal, err)
			}
		}

		// 7. Запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			TenantID:   req.TenantID,
			CustomerID: customer.ID,
			ServiceID:  service.ID,
			Date:       date,
			StartTime:  slot.Start,
			EndTime:    slot.End,
			Blocks:     service.Blocks(),
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrTimeConflict) {
				uc.logger.Warn("CreateAppointment: overlap rejected by storage")
				return ErrTimeConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		// 8. Визиты клиента
		visits, err := uc.customerRepo.IncrementVisits(txCtx, req.TenantID, customer.ID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				return fmt.Errorf("%w: customer id=%d disappeared", ErrInternal, customer.ID)
			}
			uc.logger.Error("CreateAppointment: failed to increment visits: %v", err)
			return fmt.Errorf("%w: failed to increment visits: %w", ErrInternal, err)
		}
		customer.Visits = visits

		result = toResponse(created, customer, service, resolution == customerCreated)
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrTimeConflict) && uc.metrics != nil {
			uc.metrics.IncBookingConflict(req.TenantID)
		}
		if !isKnown(err) {
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncAppointmentCreated(req.TenantID)
	}
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, req.TenantID); err != nil {
			uc.logger.Warn("CreateAppointment: failed to invalidate availability cache: %v", err)
		}
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d, customer id=%d, new customer=%t",
		result.ID, result.Customer.ID, result.CustomerCreated)

	return result, nil
}

func isKnown(err error) bool {
	for _, known := range []error{
		ErrMissingField,
		ErrInvalidFormat,
		ErrServiceNotFound,
		ErrNameRequired,
		ErrTimeConflict,
		ErrInternal,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}

func toResponse(a *domain.Appointment, c *domain.Customer, s *domain.Service, customerCreated bool) *Response {
	return &Response{
		ID:        a.ID,
		Date:      a.Date,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Blocks:    a.Blocks,
		CreatedAt: a.CreatedAt,
		Customer: CustomerSummary{
			ID:     c.ID,
			Name:   c.Name,
			Phone:  c.Phone,
			Visits: c.Visits,
		},
		Service: ServiceSummary{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
		},
		CustomerCreated: customerCreated,
	}
}
