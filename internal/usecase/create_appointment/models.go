package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	TenantID  string // уже разрешенный тенант
	Phone     string // обязательно
	Name      string // нужно только для нового клиента
	ServiceID int64
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
}

// CustomerSummary краткие данные клиента в ответе
type CustomerSummary struct {
	ID     int64
	Name   string
	Phone  string
	Visits int
}

// ServiceSummary краткие данные услуги в ответе
type ServiceSummary struct {
	ID              int64
	Name            string
	DurationMinutes int
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	Blocks          int
	CreatedAt       time.Time
	Customer        CustomerSummary
	Service         ServiceSummary
	CustomerCreated bool // клиент создан этой записью
}
