package models

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модели

// BootstrapRequest запрос на создание тенанта
type BootstrapRequest struct {
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
}

// UpdateSettingsRequest частичное обновление настроек.
// nil означает "не менять", пустая строка у часов сбрасывает их к значению по умолчанию.
type UpdateSettingsRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	WeekStart   *string `json:"weekStart,omitempty"`
	WeekEnd     *string `json:"weekEnd,omitempty"`
	SatStart    *string `json:"satStart,omitempty"`
	SatEnd      *string `json:"satEnd,omitempty"`
	WorkingDays *[]int  `json:"workingDays,omitempty"`
}

// Response модели

// TenantResponse краткие данные тенанта
type TenantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BootstrapResponse ответ на создание тенанта
type BootstrapResponse struct {
	OK     bool           `json:"ok"`
	Tenant TenantResponse `json:"tenant"`
}

// SettingsResponse настройки тенанта. Ненастроенные часы возвращаются как null,
// рабочие дни всегда заполнены (по умолчанию понедельник-суббота).
type SettingsResponse struct {
	Name        string  `json:"name"`
	Phone       *string `json:"phone"`
	WeekStart   *string `json:"weekStart"`
	WeekEnd     *string `json:"weekEnd"`
	SatStart    *string `json:"satStart"`
	SatEnd      *string `json:"satEnd"`
	WorkingDays []int   `json:"workingDays"`
}

// FromDomainTenant конвертирует domain модель в DTO
func FromDomainTenant(t *domain.Tenant) *TenantResponse {
	return &TenantResponse{ID: t.ID, Name: t.Name}
}

// FromDomainSettings конвертирует настройки тенанта в DTO
func FromDomainSettings(t *domain.Tenant) *SettingsResponse {
	return &SettingsResponse{
		Name:        t.Name,
		Phone:       t.Phone,
		WeekStart:   timeOrNil(t.HoursStartWeek),
		WeekEnd:     timeOrNil(t.HoursEndWeek),
		SatStart:    timeOrNil(t.HoursStartSat),
		SatEnd:      timeOrNil(t.HoursEndSat),
		WorkingDays: t.WorkingDaysOrDefault(),
	}
}

func timeOrNil(t *types.TimeString) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.String()
	return &s
}
