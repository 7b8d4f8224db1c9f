package domain

// Service is a bookable service of a tenant
type Service struct {
	ID              int64
	TenantID        string
	Name            string
	DurationMinutes int
	Price           int // smallest currency unit
}

// Blocks number of 5-minute scheduling blocks the service occupies (floor division)
func (s *Service) Blocks() int {
	return s.DurationMinutes / BlockMinutes
}

// Customer is a client of a tenant, identified by (TenantID, Phone)
type Customer struct {
	ID       int64
	TenantID string
	Phone    string
	Name     string
	Visits   int
}
