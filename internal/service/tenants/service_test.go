package tenants

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-AgendaService/internal/service/tenants/models"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type fakeTenants struct {
	items   map[string]*domain.Tenant
	updates int
}

func (f *fakeTenants) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	t, ok := f.items[id]
	if !ok {
		return nil, tenantRepo.ErrTenantNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTenants) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	if _, ok := f.items[tenant.ID]; ok {
		return nil, tenantRepo.ErrTenantAlreadyExists
	}
	cp := *tenant
	f.items[tenant.ID] = &cp
	return tenant, nil
}

func (f *fakeTenants) UpdateSettings(ctx context.Context, tenant *domain.Tenant) error {
	f.updates++
	cp := *tenant
	f.items[tenant.ID] = &cp
	return nil
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type fakeCache struct{ invalidated []string }

func (f *fakeCache) Invalidate(ctx context.Context, tenantID string) error {
	f.invalidated = append(f.invalidated, tenantID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeTenants, *fakeCache) {
	repo := &fakeTenants{items: map[string]*domain.Tenant{
		"divasspa": {ID: "divasspa", Name: "Divas Spa"},
	}}
	cache := &fakeCache{}
	return NewService(repo, inlineTx{}, cache, "demoagenda.shop", nopLogger{}), repo, cache
}

func TestBootstrap(t *testing.T) {
	s, repo, _ := newService()

	resp, err := s.Bootstrap(context.Background(), &models.BootstrapRequest{TenantID: "Nails-Studio", Name: "Nails"})
	require.NoError(t, err)

	assert.True(t, resp.OK)
	assert.Equal(t, "nails-studio", resp.Tenant.ID)
	require.NotNil(t, repo.items["nails-studio"].Domain)
	assert.Equal(t, "nails-studio.demoagenda.shop", *repo.items["nails-studio"].Domain)
}

func TestBootstrap_Errors(t *testing.T) {
	s, _, _ := newService()

	_, err := s.Bootstrap(context.Background(), &models.BootstrapRequest{Name: "No id"})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = s.Bootstrap(context.Background(), &models.BootstrapRequest{TenantID: "bad.slug", Name: "x"})
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = s.Bootstrap(context.Background(), &models.BootstrapRequest{TenantID: "divasspa", Name: "Again"})
	assert.ErrorIs(t, err, ErrTenantAlreadyExists)
}

func TestGetSettings_Defaults(t *testing.T) {
	s, _, _ := newService()

	resp, err := s.GetSettings(context.Background(), "divasspa")
	require.NoError(t, err)

	assert.Equal(t, "Divas Spa", resp.Name)
	assert.Nil(t, resp.WeekStart)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, resp.WorkingDays)

	_, err = s.GetSettings(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestUpdateSettings_Partial(t *testing.T) {
	s, repo, cache := newService()
	repo.items["divasspa"].HoursEndWeek = ptr.Ptr(types.TimeString("19:00"))

	resp, err := s.UpdateSettings(context.Background(), "divasspa", &models.UpdateSettingsRequest{
		Phone:       ptr.Ptr("6861234567"),
		WeekStart:   ptr.Ptr("09:00"),
		WorkingDays: &[]int{5, 1, 1, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, "Divas Spa", resp.Name)
	assert.Equal(t, "09:00", *resp.WeekStart)
	assert.Equal(t, "19:00", *resp.WeekEnd)
	assert.Equal(t, []int{0, 1, 5}, resp.WorkingDays)
	assert.Equal(t, "6861234567", *repo.items["divasspa"].Phone)
	assert.Equal(t, []string{"divasspa"}, cache.invalidated)
}

func TestUpdateSettings_ResetHours(t *testing.T) {
	s, repo, _ := newService()
	repo.items["divasspa"].HoursStartSat = ptr.Ptr(types.TimeString("11:00"))

	resp, err := s.UpdateSettings(context.Background(), "divasspa", &models.UpdateSettingsRequest{SatStart: ptr.Ptr("")})
	require.NoError(t, err)
	assert.Nil(t, resp.SatStart)
}

func TestUpdateSettings_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UpdateSettingsRequest
		wantErr error
	}{
		{"bad time", models.UpdateSettingsRequest{WeekStart: ptr.Ptr("9am")}, ErrInvalidFormat},
		{"start after end", models.UpdateSettingsRequest{SatStart: ptr.Ptr("17:00"), SatEnd: ptr.Ptr("16:00")}, ErrInvalidHours},
		{"equal bounds", models.UpdateSettingsRequest{WeekStart: ptr.Ptr("10:00"), WeekEnd: ptr.Ptr("10:00")}, ErrInvalidHours},
		{"day out of range", models.UpdateSettingsRequest{WorkingDays: &[]int{1, 7}}, ErrInvalidFormat},
		{"empty name", models.UpdateSettingsRequest{Name: ptr.Ptr("  ")}, ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo, cache := newService()
			req := tt.req

			_, err := s.UpdateSettings(context.Background(), "divasspa", &req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.updates)
			assert.Empty(t, cache.invalidated)
		})
	}
}
