package domain

import "time"

// BusySlot a fixed 15-minute interval marked unavailable
type BusySlot struct {
	Start time.Time
	End   time.Time
}
