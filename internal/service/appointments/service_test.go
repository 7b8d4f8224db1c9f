package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type fakeAppointments struct {
	items      []*domain.Appointment
	lastFilter domain.AppointmentsFilter
	err        error
}

func (f *fakeAppointments) GetByTenantWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilter = filter
	result := make([]*domain.Appointment, 0)
	for _, a := range f.items {
		if a.TenantID == filter.TenantID && !a.Date.Before(filter.From) && a.Date.Before(filter.To) {
			result = append(result, a)
		}
	}
	return result, nil
}

type fakeCustomers map[int64]*domain.Customer

func (f fakeCustomers) GetByIDs(ctx context.Context, tenantID string, ids []int64) (map[int64]*domain.Customer, error) {
	result := make(map[int64]*domain.Customer)
	for _, id := range ids {
		if c, ok := f[id]; ok && c.TenantID == tenantID {
			result[id] = c
		}
	}
	return result, nil
}

type fakeServices map[int64]*domain.Service

func (f fakeServices) GetByIDs(ctx context.Context, tenantID string, ids []int64) (map[int64]*domain.Service, error) {
	result := make(map[int64]*domain.Service)
	for _, id := range ids {
		if s, ok := f[id]; ok && s.TenantID == tenantID {
			result[id] = s
		}
	}
	return result, nil
}

type inlineTx struct{ calls int }

func (t *inlineTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func newService(appts *fakeAppointments) (*Service, *inlineTx) {
	customers := fakeCustomers{1: {ID: 1, TenantID: "divasspa", Name: "Ana", Phone: "555", Visits: 4}}
	services := fakeServices{2: {ID: 2, TenantID: "divasspa", Name: "Facial", DurationMinutes: 60}}
	tx := &inlineTx{}
	s := NewService(appts, customers, services, tx, nopLogger{})
	s.timeProvider = fixedTime{now: time.Date(2025, 11, 29, 15, 0, 0, 0, time.UTC)}
	return s, tx
}

func appt(id int64, date time.Time, start, end string) *domain.Appointment {
	return &domain.Appointment{
		ID: id, TenantID: "divasspa", CustomerID: 1, ServiceID: 2,
		Date: date, StartTime: types.TimeString(start), EndTime: types.TimeString(end), Blocks: 12,
	}
}

func TestDay_DefaultsToToday(t *testing.T) {
	appts := &fakeAppointments{items: []*domain.Appointment{
		appt(1, d(2025, 11, 29), "10:00", "11:00"),
		appt(2, d(2025, 11, 30), "10:00", "11:00"),
	}}
	s, tx := newService(appts)

	resp, err := s.Day(context.Background(), "divasspa", "")
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "2025-11-29", resp.From)
	assert.Equal(t, "2025-11-30", resp.To)
	assert.Equal(t, 1, tx.calls)

	got := resp.Appointments[0]
	assert.Equal(t, "10:00", got.StartTime)
	require.NotNil(t, got.Customer)
	assert.Equal(t, "Ana", got.Customer.Name)
	require.NotNil(t, got.Service)
	assert.Equal(t, 60, got.Service.DurationMinutes)
}

func TestDay_InvalidFormat(t *testing.T) {
	s, _ := newService(&fakeAppointments{})

	_, err := s.Day(context.Background(), "divasspa", "2025-13-01")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestWeek(t *testing.T) {
	appts := &fakeAppointments{}
	s, _ := newService(appts)

	_, err := s.Week(context.Background(), "divasspa", "2025-12-29")
	require.NoError(t, err)
	assert.Equal(t, d(2025, 12, 29), appts.lastFilter.From)
	assert.Equal(t, d(2026, 1, 5), appts.lastFilter.To)

	_, err = s.Week(context.Background(), "divasspa", "")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestMonth_DecemberRollsOver(t *testing.T) {
	appts := &fakeAppointments{items: []*domain.Appointment{
		appt(1, d(2025, 11, 30), "10:00", "11:00"),
		appt(2, d(2025, 12, 1), "10:00", "11:00"),
		appt(3, d(2025, 12, 31), "18:00", "19:00"),
		appt(4, d(2026, 1, 1), "10:00", "11:00"),
	}}
	s, _ := newService(appts)

	resp, err := s.Month(context.Background(), "divasspa", "2025-12")
	require.NoError(t, err)

	assert.Equal(t, d(2025, 12, 1), appts.lastFilter.From)
	assert.Equal(t, d(2026, 1, 1), appts.lastFilter.To)
	require.Len(t, resp.Appointments, 2)
	assert.Equal(t, int64(2), resp.Appointments[0].ID)
	assert.Equal(t, int64(3), resp.Appointments[1].ID)
}

func TestMonth_Errors(t *testing.T) {
	s, _ := newService(&fakeAppointments{})

	_, err := s.Month(context.Background(), "divasspa", "")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = s.Month(context.Background(), "divasspa", "2025-1")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestList_Idempotent(t *testing.T) {
	appts := &fakeAppointments{items: []*domain.Appointment{
		appt(1, d(2025, 12, 1), "10:00", "11:00"),
		appt(2, d(2025, 12, 2), "09:00", "09:30"),
	}}
	s, _ := newService(appts)

	first, err := s.Month(context.Background(), "divasspa", "2025-12")
	require.NoError(t, err)
	second, err := s.Month(context.Background(), "divasspa", "2025-12")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestList_MissingRelationsAreNil(t *testing.T) {
	orphan := appt(1, d(2025, 11, 29), "10:00", "11:00")
	orphan.CustomerID = 99
	s, _ := newService(&fakeAppointments{items: []*domain.Appointment{orphan}})

	resp, err := s.Day(context.Background(), "divasspa", "2025-11-29")
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Nil(t, resp.Appointments[0].Customer)
	assert.NotNil(t, resp.Appointments[0].Service)
}

func TestList_RepositoryError(t *testing.T) {
	s, _ := newService(&fakeAppointments{err: errors.New("connection reset")})

	_, err := s.Day(context.Background(), "divasspa", "2025-11-29")
	assert.ErrorIs(t, err, ErrInternal)
}
