package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// normalizeRequest убирает пробелы по краям строковых полей
func normalizeRequest(req *Request) {
	req.Phone = strings.TrimSpace(req.Phone)
	req.Name = strings.TrimSpace(req.Name)
	req.Date = strings.TrimSpace(req.Date)
	req.StartTime = strings.TrimSpace(req.StartTime)
}

// validateRequest проверяет наличие обязательных полей
func validateRequest(req *Request) error {
	if req.TenantID == "" {
		return fmt.Errorf("%w: tenant", ErrMissingField)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone", ErrMissingField)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service_id", ErrMissingField)
	}
	if req.Date == "" {
		return fmt.Errorf("%w: date", ErrMissingField)
	}
	if req.StartTime == "" {
		return fmt.Errorf("%w: start_time", ErrMissingField)
	}

	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is longer than %d characters", ErrInvalidFormat, domain.MaxPhoneLength)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidFormat, domain.MaxNameLength)
	}

	return nil
}

// parseSlot разбирает дату и время начала и строит интервал записи длительностью duration
func parseSlot(dateStr, startStr string, duration int) (time.Time, types.TimeRange, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, types.TimeRange{}, fmt.Errorf("%w: date %q", ErrInvalidFormat, dateStr)
	}

	start, err := types.ParseTime(startStr)
	if err != nil {
		return time.Time{}, types.TimeRange{}, fmt.Errorf("%w: start_time %q", ErrInvalidFormat, startStr)
	}

	slot, err := types.NewTimeRange(start, duration)
	if err != nil {
		return time.Time{}, types.TimeRange{}, fmt.Errorf("%w: appointment must end on the same day: %v", ErrInvalidFormat, err)
	}

	return date, slot, nil
}

// findConflict возвращает первую запись, пересекающуюся со slot
func findConflict(slot types.TimeRange, appointments []*domain.Appointment) *domain.Appointment {
	for _, appointment := range appointments {
		if slot.Overlaps(appointment.Range()) {
			return appointment
		}
	}
	return nil
}
