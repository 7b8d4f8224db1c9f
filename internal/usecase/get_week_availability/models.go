package get_week_availability

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса недельной доступности
type Request struct {
	Tenant string // slug из поддомена, например "divasspa"
}

// Response бизнес-часы тенанта, занятые 15-минутные слоты и каталог услуг
type Response struct {
	TenantID    string
	WorkingDays []int
	WeekStart   types.TimeString
	WeekEnd     types.TimeString
	SatStart    types.TimeString
	SatEnd      types.TimeString
	WindowStart time.Time // сегодня (UTC)
	WindowEnd   time.Time // сегодня + 7 дней, включительно
	BusySlots   []domain.BusySlot
	Services    []Service
}

// Service услуга в каталоге ответа
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
}
