package domain

import "github.com/m04kA/SMC-AgendaService/pkg/types"

// Default business hours, used when a tenant has not configured its own
const (
	DefaultWeekStart types.TimeString = "10:00"
	DefaultWeekEnd   types.TimeString = "19:00"
	DefaultSatStart  types.TimeString = "10:00"
	DefaultSatEnd    types.TimeString = "16:00"
)

// DefaultWorkingDays Monday..Saturday (time.Weekday numbering, 0 = Sunday)
var DefaultWorkingDays = []int{1, 2, 3, 4, 5, 6}

// Scheduling granularity
const (
	BlockMinutes           = 5  // an appointment occupies duration/5 blocks
	BusySlotMinutes        = 15 // busy slots are reported in fixed 15-minute steps
	AvailabilityWindowDays = 7
)

// Business validation constants
const (
	MinWeekday         = 0
	MaxWeekday         = 6
	MaxServiceDuration = 24 * 60
	MaxNameLength      = 100
	MaxPhoneLength     = 20
	MaxTenantIDLength  = 50
)

// Time format constants
const (
	TimeFormat  = types.TimeLayout  // HH:MM
	DateFormat  = types.DateLayout  // YYYY-MM-DD
	MonthFormat = types.MonthLayout // YYYY-MM
	// SlotTimestampFormat busy slot boundaries on the wire
	SlotTimestampFormat = "2006-01-02T15:04:05"
)
