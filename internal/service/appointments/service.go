package appointments

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Service сервис выборок записей за день, неделю и месяц
type Service struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	serviceRepo     ServiceRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Day записи на дату YYYY-MM-DD. Пустая дата означает сегодня (UTC).
func (s *Service) Day(ctx context.Context, tenantID, date string) (*models.AppointmentListResponse, error) {
	date = strings.TrimSpace(date)

	day := types.DateOnly(s.timeProvider.Now().UTC())
	if date != "" {
		parsed, err := types.ParseDate(date)
		if err != nil {
			s.logger.Warn("Day: invalid date=%q", date)
			return nil, fmt.Errorf("%w: date %q, expected YYYY-MM-DD", ErrInvalidFormat, date)
		}
		day = parsed
	}

	return s.list(ctx, "Day", tenantID, types.DayRange(day))
}

// Week записи за семь дней [start, start+7)
func (s *Service) Week(ctx context.Context, tenantID, start string) (*models.AppointmentListResponse, error) {
	start = strings.TrimSpace(start)
	if start == "" {
		return nil, fmt.Errorf("%w: start (YYYY-MM-DD)", ErrMissingField)
	}

	from, err := types.ParseDate(start)
	if err != nil {
		s.logger.Warn("Week: invalid start=%q", start)
		return nil, fmt.Errorf("%w: start %q, expected YYYY-MM-DD", ErrInvalidFormat, start)
	}

	return s.list(ctx, "Week", tenantID, types.WeekRange(from))
}

// Month записи за календарный месяц YYYY-MM
func (s *Service) Month(ctx context.Context, tenantID, month string) (*models.AppointmentListResponse, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		return nil, fmt.Errorf("%w: month (YYYY-MM)", ErrMissingField)
	}

	first, err := types.ParseMonth(month)
	if err != nil {
		s.logger.Warn("Month: invalid month=%q", month)
		return nil, fmt.Errorf("%w: month %q, expected YYYY-MM", ErrInvalidFormat, month)
	}

	return s.list(ctx, "Month", tenantID, types.MonthRange(first))
}

// list читает записи и связанные сущности в одной read-only транзакции,
// чтобы вложенные данные соответствовали одному снимку
func (s *Service) list(ctx context.Context, op, tenantID string, r types.DateRange) (*models.AppointmentListResponse, error) {
	s.logger.Info("%s: fetching appointments for tenant=%s, period=%s to %s",
		op, tenantID, r.From.Format(domain.DateFormat), r.LastDay().Format(domain.DateFormat))

	var details []*domain.AppointmentDetails

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		appointments, err := s.appointmentRepo.GetByTenantWithFilter(txCtx, domain.AppointmentsFilter{
			TenantID: tenantID,
			From:     r.From,
			To:       r.To,
		})
		if err != nil {
			return fmt.Errorf("get appointments: %v", err)
		}

		customerIDs, serviceIDs := collectIDs(appointments)

		customers, err := s.customerRepo.GetByIDs(txCtx, tenantID, customerIDs)
		if err != nil {
			return fmt.Errorf("get customers: %v", err)
		}

		services, err := s.serviceRepo.GetByIDs(txCtx, tenantID, serviceIDs)
		if err != nil {
			return fmt.Errorf("get services: %v", err)
		}

		details = make([]*domain.AppointmentDetails, 0, len(appointments))
		for _, a := range appointments {
			details = append(details, &domain.AppointmentDetails{
				Appointment: *a,
				Customer:    customers[a.CustomerID],
				Service:     services[a.ServiceID],
			})
		}

		return nil
	})
	if err != nil {
		s.logger.Error("%s: repository error for tenant=%s: %v", op, tenantID, err)
		return nil, fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: successfully fetched %d appointments for tenant=%s", op, len(details), tenantID)
	return models.FromDomainAppointmentList(r, details), nil
}

// collectIDs уникальные id клиентов и услуг в порядке появления
func collectIDs(appointments []*domain.Appointment) ([]int64, []int64) {
	customerIDs := make([]int64, 0, len(appointments))
	serviceIDs := make([]int64, 0, len(appointments))
	seenCustomers := make(map[int64]struct{}, len(appointments))
	seenServices := make(map[int64]struct{}, len(appointments))

	for _, a := range appointments {
		if _, ok := seenCustomers[a.CustomerID]; !ok {
			seenCustomers[a.CustomerID] = struct{}{}
			customerIDs = append(customerIDs, a.CustomerID)
		}
		if _, ok := seenServices[a.ServiceID]; !ok {
			seenServices[a.ServiceID] = struct{}{}
			serviceIDs = append(serviceIDs, a.ServiceID)
		}
	}

	return customerIDs, serviceIDs
}
