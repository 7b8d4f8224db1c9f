package types

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// TimeLayout формат времени суток на проводе (HH:MM)
const TimeLayout = "15:04"

const minutesPerDay = 24 * 60

var timeStringPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeString время суток в формате "HH:MM" (24 часа), без даты и часового пояса.
// Строки фиксированной ширины, поэтому лексикографический порядок совпадает с хронологическим.
type TimeString string

// NewTimeString берет время суток из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeLayout))
}

// ParseTime разбирает строку строго в формате HH:MM
func ParseTime(s string) (TimeString, error) {
	if !timeStringPattern.MatchString(s) {
		return "", fmt.Errorf("%w: time %q, expected HH:MM", ErrInvalidFormat, s)
	}
	return TimeString(s), nil
}

// FromMinutes строит время суток из количества минут от полуночи
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrOutOfDay, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет формат
func (t TimeString) Validate() error {
	_, err := ParseTime(string(t))
	return err
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	hours, _ := strconv.Atoi(string(t[:2]))
	minutes, _ := strconv.Atoi(string(t[3:]))
	return hours*60 + minutes, nil
}

// AddMinutes сдвигает время на n минут. Переход через полночь не допускается.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(current + n)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

// On возвращает момент времени t в указанную дату (в часовом поясе даты)
func (t TimeString) On(date time.Time) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).Add(time.Duration(minutes) * time.Minute), nil
}

// Scan реализует sql.Scanner. Postgres TIME приходит как time.Time (lib/pq) или строка "HH:MM:SS".
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidFormat, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
