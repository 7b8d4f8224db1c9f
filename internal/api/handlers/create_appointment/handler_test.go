package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
)

type stubUseCase struct {
	got  *createAppointment.Request
	resp *createAppointment.Response
	err  error
}

func (s *stubUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"phone":"6861234567","name":"María","service_id":1,"date":"2025-11-29","start_time":"11:00"}`

func do(t *testing.T, uc *stubUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
	r = r.WithContext(middleware.WithTenant(r.Context(), &domain.Tenant{ID: "divasspa"}))
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, r)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createAppointment.Response{
		ID:        5,
		Date:      time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC),
		StartTime: "11:00",
		EndTime:   "12:00",
		Blocks:    12,
		CreatedAt: time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC),
		Customer:  createAppointment.CustomerSummary{ID: 3, Name: "María", Phone: "6861234567", Visits: 1},
		Service:   createAppointment.ServiceSummary{ID: 1, Name: "Facial", DurationMinutes: 60},
	}}

	rec := do(t, uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, "divasspa", uc.got.TenantID)
	assert.Equal(t, int64(1), uc.got.ServiceID)

	var resp CreateAppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "2025-11-29", resp.Appointment.Date)
	assert.Equal(t, "11:00", resp.Appointment.StartTime)
	assert.Equal(t, "12:00", resp.Appointment.EndTime)
	assert.Equal(t, 60, resp.Appointment.Service.DurationMinutes)
	assert.Equal(t, 1, resp.Appointment.Customer.Visits)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{createAppointment.ErrNameRequired, http.StatusBadRequest, handlers.CodeNameRequired},
		{createAppointment.ErrTimeConflict, http.StatusConflict, handlers.CodeTimeConflict},
		{createAppointment.ErrServiceNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{fmt.Errorf("%w: date", createAppointment.ErrInvalidFormat), http.StatusBadRequest, handlers.CodeInvalidFormat},
		{createAppointment.ErrInternal, http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := do(t, &stubUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}
}

func TestHandle_MissingFields(t *testing.T) {
	uc := &stubUseCase{}

	rec := do(t, uc, `{"phone":"6861234567","date":"2025-11-29","start_time":"11:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handlers.CodeMissingField, errorCode(t, rec))
	assert.Nil(t, uc.got)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := do(t, &stubUseCase{}, `{"phone":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handlers.CodeBadRequest, errorCode(t, rec))
}
