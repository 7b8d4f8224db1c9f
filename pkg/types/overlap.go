package types

import "cmp"

// Overlaps проверяет пересечение полуоткрытых интервалов [startA, endA) и [startB, endB).
// Интервалы, которые только соприкасаются (endA == startB), не пересекаются.
func Overlaps[T cmp.Ordered](startA, endA, startB, endB T) bool {
	return !(endA <= startB || startA >= endB)
}

// TimeRange интервал [Start, End) в пределах одних суток
type TimeRange struct {
	Start TimeString
	End   TimeString
}

// NewTimeRange строит интервал от start длительностью durationMinutes.
// Возвращает ErrOutOfDay, если конец интервала уходит за полночь.
func NewTimeRange(start TimeString, durationMinutes int) (TimeRange, error) {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}

// Overlaps проверяет пересечение с другим интервалом
func (r TimeRange) Overlaps(other TimeRange) bool {
	return Overlaps(r.Start, r.End, other.Start, other.End)
}
