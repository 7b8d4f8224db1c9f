package create_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// memStore in-memory хранилище. DoSerializable откатывает состояние при ошибке
// и сериализует транзакции общим мьютексом.
type memStore struct {
	mu           sync.Mutex
	services     map[int64]*domain.Service
	customers    map[int64]*domain.Customer
	appointments []*domain.Appointment
	nextID       int64
	locked       []string
}

func newMemStore() *memStore {
	return &memStore{
		services:  make(map[int64]*domain.Service),
		customers: make(map[int64]*domain.Customer),
		nextID:    100,
	}
}

func (s *memStore) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := make(map[int64]*domain.Customer, len(s.customers))
	for id, c := range s.customers {
		cp := *c
		customers[id] = &cp
	}
	appointments := append([]*domain.Appointment(nil), s.appointments...)

	if err := fn(ctx); err != nil {
		s.customers = customers
		s.appointments = appointments
		return err
	}
	return nil
}

func (s *memStore) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Service, error) {
	svc, ok := s.services[id]
	if !ok || svc.TenantID != tenantID {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return svc, nil
}

type customers struct{ *memStore }

func (c customers) GetByPhone(ctx context.Context, tenantID, phone string) (*domain.Customer, error) {
	for _, cust := range c.customers {
		if cust.TenantID == tenantID && cust.Phone == phone {
			cp := *cust
			return &cp, nil
		}
	}
	return nil, customerRepo.ErrCustomerNotFound
}

func (c customers) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	c.nextID++
	customer.ID = c.nextID
	cp := *customer
	c.customers[customer.ID] = &cp
	return customer, nil
}

func (c customers) IncrementVisits(ctx context.Context, tenantID string, id int64) (int, error) {
	cust, ok := c.customers[id]
	if !ok || cust.TenantID != tenantID {
		return 0, customerRepo.ErrCustomerNotFound
	}
	cust.Visits++
	return cust.Visits, nil
}

type appointments struct{ *memStore }

func (a appointments) LockDay(ctx context.Context, tenantID string, date time.Time) error {
	a.locked = append(a.locked, tenantID+":"+date.Format(domain.DateFormat))
	return nil
}

func (a appointments) GetByTenantAndDate(ctx context.Context, tenantID string, date time.Time) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range a.appointments {
		if appt.TenantID == tenantID && appt.Date.Equal(date) {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (a appointments) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	a.nextID++
	appointment.ID = a.nextID
	appointment.CreatedAt = time.Now()
	a.appointments = append(a.appointments, appointment)
	return appointment, nil
}

type fakeCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (f *fakeCache) Invalidate(ctx context.Context, tenantID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, tenantID)
	return nil
}

type fakeMetrics struct {
	mu                 sync.Mutex
	created, conflicts int
}

func (f *fakeMetrics) IncAppointmentCreated(string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
}

func (f *fakeMetrics) IncBookingConflict(string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conflicts++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	store   *memStore
	cache   *fakeCache
	metrics *fakeMetrics
	uc      *UseCase
}

const tenant = "divasspa"

func newFixture() *fixture {
	store := newMemStore()
	store.services[1] = &domain.Service{ID: 1, TenantID: tenant, Name: "Facial", DurationMinutes: 60}
	store.services[2] = &domain.Service{ID: 2, TenantID: tenant, Name: "Brows", DurationMinutes: 47}
	store.services[3] = &domain.Service{ID: 3, TenantID: "other", Name: "Foreign", DurationMinutes: 30}
	store.customers[10] = &domain.Customer{ID: 10, TenantID: tenant, Phone: "5550001", Name: "Ana", Visits: 2}

	f := &fixture{store: store, cache: &fakeCache{}, metrics: &fakeMetrics{}}
	f.uc = NewUseCase(store, customers{store}, appointments{store}, store, f.cache, f.metrics, nopLogger{})
	return f
}

func (f *fixture) book(t *testing.T, phone, name string, serviceID int64, start string) (*Response, error) {
	t.Helper()
	return f.uc.Execute(context.Background(), &Request{
		TenantID:  tenant,
		Phone:     phone,
		Name:      name,
		ServiceID: serviceID,
		Date:      "2025-11-29",
		StartTime: start,
	})
}

func TestExecute_ExistingCustomer(t *testing.T) {
	f := newFixture()

	resp, err := f.book(t, "5550001", "", 1, "10:00")
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, 12, resp.Blocks)
	assert.Equal(t, int64(10), resp.Customer.ID)
	assert.Equal(t, 3, resp.Customer.Visits)
	assert.False(t, resp.CustomerCreated)
	assert.Equal(t, "Facial", resp.Service.Name)
	assert.Equal(t, []string{"divasspa:2025-11-29"}, f.store.locked)
	assert.Equal(t, []string{tenant}, f.cache.invalidated)
	assert.Equal(t, 1, f.metrics.created)
}

func TestExecute_AdjacentSucceeds(t *testing.T) {
	f := newFixture()

	_, err := f.book(t, "5550001", "", 1, "10:00")
	require.NoError(t, err)

	resp, err := f.book(t, "5550001", "", 1, "11:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("12:00"), resp.EndTime)
	assert.Len(t, f.store.appointments, 2)
}

func TestExecute_OverlapConflicts(t *testing.T) {
	f := newFixture()

	_, err := f.book(t, "5550001", "", 1, "10:00")
	require.NoError(t, err)

	_, err = f.book(t, "5550001", "", 1, "10:30")
	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.Len(t, f.store.appointments, 1)
	assert.Equal(t, 3, f.store.customers[10].Visits)
	assert.Equal(t, 1, f.metrics.conflicts)
}

func TestExecute_NameRequired(t *testing.T) {
	f := newFixture()

	_, err := f.book(t, "6861234567", "", 1, "10:00")
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Len(t, f.store.customers, 1)
	assert.Empty(t, f.store.appointments)
	assert.Empty(t, f.cache.invalidated)
}

func TestExecute_NewCustomerCreated(t *testing.T) {
	f := newFixture()

	resp, err := f.book(t, "6861234567", "María", 1, "10:00")
	require.NoError(t, err)

	assert.True(t, resp.CustomerCreated)
	assert.Equal(t, "María", resp.Customer.Name)
	assert.Equal(t, 1, resp.Customer.Visits)
	assert.Len(t, f.store.customers, 2)
}

func TestExecute_ConflictDoesNotPersistNewCustomer(t *testing.T) {
	f := newFixture()

	_, err := f.book(t, "5550001", "", 1, "10:00")
	require.NoError(t, err)

	_, err = f.book(t, "6861234567", "María", 1, "10:15")
	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.Len(t, f.store.customers, 1)
}

func TestExecute_BlocksFloorDivision(t *testing.T) {
	f := newFixture()

	resp, err := f.book(t, "5550001", "", 2, "09:00")
	require.NoError(t, err)

	assert.Equal(t, 47/5, resp.Blocks)
	assert.Equal(t, types.TimeString("09:47"), resp.EndTime)
}

func TestExecute_ServiceOfOtherTenant(t *testing.T) {
	f := newFixture()

	_, err := f.book(t, "5550001", "", 3, "10:00")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"no phone", Request{TenantID: tenant, ServiceID: 1, Date: "2025-11-29", StartTime: "10:00"}, ErrMissingField},
		{"blank phone", Request{TenantID: tenant, Phone: "  ", ServiceID: 1, Date: "2025-11-29", StartTime: "10:00"}, ErrMissingField},
		{"no service", Request{TenantID: tenant, Phone: "5550001", Date: "2025-11-29", StartTime: "10:00"}, ErrMissingField},
		{"no date", Request{TenantID: tenant, Phone: "5550001", ServiceID: 1, StartTime: "10:00"}, ErrMissingField},
		{"bad date", Request{TenantID: tenant, Phone: "5550001", ServiceID: 1, Date: "29/11/2025", StartTime: "10:00"}, ErrInvalidFormat},
		{"bad time", Request{TenantID: tenant, Phone: "5550001", ServiceID: 1, Date: "2025-11-29", StartTime: "25:00"}, ErrInvalidFormat},
		{"crosses midnight", Request{TenantID: tenant, Phone: "5550001", ServiceID: 1, Date: "2025-11-29", StartTime: "23:30"}, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := tt.req

			_, err := f.uc.Execute(context.Background(), &req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.store.appointments)
		})
	}
}

func TestExecute_ConcurrentBookingsNeverOverlap(t *testing.T) {
	f := newFixture()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(), &Request{
				TenantID: tenant, Phone: "5550001", ServiceID: 1, Date: "2025-11-29", StartTime: "10:00",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, ErrTimeConflict))
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, f.store.appointments, 1)
}
