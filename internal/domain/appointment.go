package domain

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Appointment is a booked [StartTime, EndTime) interval on Date.
// Appointments of one tenant never overlap on the same date.
type Appointment struct {
	ID         int64
	TenantID   string
	CustomerID int64
	ServiceID  int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Blocks     int
	CreatedAt  time.Time
}

// Range returns the appointment interval
func (a *Appointment) Range() types.TimeRange {
	return types.TimeRange{Start: a.StartTime, End: a.EndTime}
}

// AppointmentsFilter filter for tenant appointments over a half-open date range
type AppointmentsFilter struct {
	TenantID string // required
	From     time.Time
	To       time.Time // exclusive
}

// AppointmentDetails appointment with resolved customer and service summaries.
// Customer or Service are nil when the referenced row no longer exists.
type AppointmentDetails struct {
	Appointment
	Customer *Customer
	Service  *Service
}
