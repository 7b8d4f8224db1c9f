package domain

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Tenant is an isolated business account, the partition key for all other data
type Tenant struct {
	ID        string // slug, e.g. "divasspa"
	Name      string
	Domain    *string // e.g. "divasspa.demoagenda.shop"
	Phone     *string
	Address   *string
	CreatedAt time.Time

	// Business hours, nil when not configured
	HoursStartWeek *types.TimeString
	HoursEndWeek   *types.TimeString
	HoursStartSat  *types.TimeString
	HoursEndSat    *types.TimeString

	// WorkingDays weekday numbers (0 = Sunday); empty means not configured
	WorkingDays []int
}

// BusinessHours resolved business hours of a tenant with defaults applied
type BusinessHours struct {
	WeekStart   types.TimeString
	WeekEnd     types.TimeString
	SatStart    types.TimeString
	SatEnd      types.TimeString
	WorkingDays []int
}

// ResolveBusinessHours applies defaults to every unset field
func (t *Tenant) ResolveBusinessHours() BusinessHours {
	hours := BusinessHours{
		WeekStart:   valueOr(t.HoursStartWeek, DefaultWeekStart),
		WeekEnd:     valueOr(t.HoursEndWeek, DefaultWeekEnd),
		SatStart:    valueOr(t.HoursStartSat, DefaultSatStart),
		SatEnd:      valueOr(t.HoursEndSat, DefaultSatEnd),
		WorkingDays: t.WorkingDaysOrDefault(),
	}
	return hours
}

// WorkingDaysOrDefault returns configured working days or Monday..Saturday
func (t *Tenant) WorkingDaysOrDefault() []int {
	if len(t.WorkingDays) == 0 {
		days := make([]int, len(DefaultWorkingDays))
		copy(days, DefaultWorkingDays)
		return days
	}
	days := make([]int, len(t.WorkingDays))
	copy(days, t.WorkingDays)
	return days
}

// IsWorkingDay reports whether the tenant accepts bookings on the given weekday
func (t *Tenant) IsWorkingDay(weekday time.Weekday) bool {
	for _, d := range t.WorkingDaysOrDefault() {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

func valueOr(v *types.TimeString, def types.TimeString) types.TimeString {
	if v == nil || v.IsZero() {
		return def
	}
	return *v
}
