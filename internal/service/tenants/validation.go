package tenants

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/tenants/models"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// slug тенанта используется как поддомен
var tenantIDPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

func validateTenantID(id string) error {
	if len(id) > domain.MaxTenantIDLength || !tenantIDPattern.MatchString(id) {
		return fmt.Errorf("%w: tenant_id %q must be a lowercase subdomain label", ErrInvalidFormat, id)
	}
	return nil
}

// applySettings применяет частичное обновление к копии тенанта и проверяет результат
func applySettings(t *domain.Tenant, req *models.UpdateSettingsRequest) (*domain.Tenant, error) {
	updated := *t

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name", ErrMissingField)
		}
		if len(name) > domain.MaxNameLength {
			return nil, fmt.Errorf("%w: name is longer than %d characters", ErrInvalidFormat, domain.MaxNameLength)
		}
		updated.Name = name
	}

	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if len(phone) > domain.MaxPhoneLength {
			return nil, fmt.Errorf("%w: phone is longer than %d characters", ErrInvalidFormat, domain.MaxPhoneLength)
		}
		updated.Phone = nil
		if phone != "" {
			updated.Phone = ptr.Ptr(phone)
		}
	}

	var err error
	if updated.HoursStartWeek, err = mergeTime("weekStart", t.HoursStartWeek, req.WeekStart); err != nil {
		return nil, err
	}
	if updated.HoursEndWeek, err = mergeTime("weekEnd", t.HoursEndWeek, req.WeekEnd); err != nil {
		return nil, err
	}
	if updated.HoursStartSat, err = mergeTime("satStart", t.HoursStartSat, req.SatStart); err != nil {
		return nil, err
	}
	if updated.HoursEndSat, err = mergeTime("satEnd", t.HoursEndSat, req.SatEnd); err != nil {
		return nil, err
	}

	if err := validateOrder("week", updated.HoursStartWeek, updated.HoursEndWeek); err != nil {
		return nil, err
	}
	if err := validateOrder("saturday", updated.HoursStartSat, updated.HoursEndSat); err != nil {
		return nil, err
	}

	if req.WorkingDays != nil {
		days, err := normalizeWorkingDays(*req.WorkingDays)
		if err != nil {
			return nil, err
		}
		updated.WorkingDays = days
	}

	return &updated, nil
}

func mergeTime(field string, current *types.TimeString, value *string) (*types.TimeString, error) {
	if value == nil {
		return current, nil
	}

	s := strings.TrimSpace(*value)
	if s == "" {
		return nil, nil
	}

	t, err := types.ParseTime(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q, expected HH:MM", ErrInvalidFormat, field, s)
	}

	return &t, nil
}

// validateOrder start < end, когда заданы оба значения
func validateOrder(period string, start, end *types.TimeString) error {
	if start == nil || end == nil {
		return nil
	}
	if !start.IsBefore(*end) {
		return fmt.Errorf("%w: %s %s-%s", ErrInvalidHours, period, *start, *end)
	}
	return nil
}

// normalizeWorkingDays проверяет диапазон 0..6, убирает дубликаты и сортирует
func normalizeWorkingDays(days []int) ([]int, error) {
	seen := make(map[int]struct{}, len(days))
	result := make([]int, 0, len(days))

	for _, d := range days {
		if d < domain.MinWeekday || d > domain.MaxWeekday {
			return nil, fmt.Errorf("%w: working day %d, expected %d..%d", ErrInvalidFormat, d, domain.MinWeekday, domain.MaxWeekday)
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}

	sort.Ints(result)
	return result, nil
}
