package get_week_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// expandBusySlots разбивает каждую запись на последовательные 15-минутные слоты.
// Последний слот всегда длится 15 минут, даже если запись заканчивается раньше.
func expandBusySlots(appointments []*domain.Appointment) ([]domain.BusySlot, error) {
	step := time.Duration(domain.BusySlotMinutes) * time.Minute
	busy := make([]domain.BusySlot, 0)

	for _, appointment := range appointments {
		start, err := appointment.StartTime.On(appointment.Date)
		if err != nil {
			return nil, fmt.Errorf("appointment id=%d start: %w", appointment.ID, err)
		}
		end, err := appointment.EndTime.On(appointment.Date)
		if err != nil {
			return nil, fmt.Errorf("appointment id=%d end: %w", appointment.ID, err)
		}

		for block := start; block.Before(end); block = block.Add(step) {
			busy = append(busy, domain.BusySlot{Start: block, End: block.Add(step)})
		}
	}

	return busy, nil
}
