package get_week_availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// UseCase use case недельной доступности
type UseCase struct {
	tenantRepo      TenantRepository
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	cache           Cache
	baseDomain      string
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. cache может быть nil.
func NewUseCase(
	tenantRepo TenantRepository,
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	cache Cache,
	baseDomain string,
	logger Logger,
) *UseCase {
	return &UseCase{
		tenantRepo:      tenantRepo,
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		cache:           cache,
		baseDomain:      baseDomain,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает доступность тенанта на окно [сегодня, сегодня+7] (UTC)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Tenant))
	uc.logger.Info("GetWeekAvailability: tenant=%s", slug)

	if slug == "" {
		return nil, ErrMissingField
	}

	// 1. Тенант по домену, затем по id
	tenant, err := uc.findTenant(ctx, slug)
	if err != nil {
		return nil, err
	}

	// 2. Окно считается от текущей даты UTC
	today := types.DateOnly(uc.timeProvider.Now().UTC())

	if cached, ok := uc.fromCache(ctx, tenant.ID, today); ok {
		return cached, nil
	}

	// 3. Бизнес-часы с дефолтами
	hours := tenant.ResolveBusinessHours()

	// 4. Записи окна
	windowEnd := today.AddDate(0, 0, domain.AvailabilityWindowDays)
	appointments, err := uc.appointmentRepo.GetByTenantWithFilter(ctx, domain.AppointmentsFilter{
		TenantID: tenant.ID,
		From:     today,
		To:       windowEnd.AddDate(0, 0, 1),
	})
	if err != nil {
		uc.logger.Error("GetWeekAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Занятые слоты
	busy, err := expandBusySlots(appointments)
	if err != nil {
		uc.logger.Error("GetWeekAvailability: failed to build busy slots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 6. Каталог услуг
	services, err := uc.serviceRepo.ListByTenant(ctx, tenant.ID)
	if err != nil {
		uc.logger.Error("GetWeekAvailability: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	catalog := make([]Service, 0, len(services))
	for _, s := range services {
		catalog = append(catalog, Service{ID: s.ID, Name: s.Name, DurationMinutes: s.DurationMinutes})
	}

	resp := &Response{
		TenantID:    tenant.ID,
		WorkingDays: hours.WorkingDays,
		WeekStart:   hours.WeekStart,
		WeekEnd:     hours.WeekEnd,
		SatStart:    hours.SatStart,
		SatEnd:      hours.SatEnd,
		WindowStart: today,
		WindowEnd:   windowEnd,
		BusySlots:   busy,
		Services:    catalog,
	}

	uc.toCache(ctx, resp)

	uc.logger.Info("GetWeekAvailability: tenant=%s, appointments=%d, busy slots=%d",
		tenant.ID, len(appointments), len(busy))

	return resp, nil
}

func (uc *UseCase) findTenant(ctx context.Context, slug string) (*domain.Tenant, error) {
	host := slug + "." + uc.baseDomain

	tenant, err := uc.tenantRepo.GetByDomain(ctx, host)
	if err == nil {
		return tenant, nil
	}
	if !errors.Is(err, tenantRepo.ErrTenantNotFound) {
		uc.logger.Error("GetWeekAvailability: failed to get tenant by domain %s: %v", host, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	tenant, err = uc.tenantRepo.GetByID(ctx, slug)
	if err == nil {
		return tenant, nil
	}
	if errors.Is(err, tenantRepo.ErrTenantNotFound) {
		uc.logger.Warn("GetWeekAvailability: tenant %s not found", slug)
		return nil, ErrTenantNotFound
	}

	uc.logger.Error("GetWeekAvailability: failed to get tenant id=%s: %v", slug, err)
	return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
}

// fromCache ошибки кэша не прерывают запрос: ответ строится из БД
func (uc *UseCase) fromCache(ctx context.Context, tenantID string, today time.Time) (*Response, bool) {
	if uc.cache == nil {
		return nil, false
	}

	payload, found, err := uc.cache.Get(ctx, tenantID, today)
	if err != nil {
		uc.logger.Warn("GetWeekAvailability: cache read failed: %v", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var resp Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		uc.logger.Warn("GetWeekAvailability: corrupted cache entry for tenant=%s: %v", tenantID, err)
		return nil, false
	}

	return &resp, true
}

func (uc *UseCase) toCache(ctx context.Context, resp *Response) {
	if uc.cache == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("GetWeekAvailability: failed to encode cache entry: %v", err)
		return
	}

	if err := uc.cache.Set(ctx, resp.TenantID, resp.WindowStart, payload); err != nil {
		uc.logger.Warn("GetWeekAvailability: cache write failed: %v", err)
	}
}
