package types

import (
	"fmt"
	"regexp"
	"time"
)

// Форматы дат на проводе
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// ParseDate разбирает календарную дату строго в формате YYYY-MM-DD (UTC, полночь)
func ParseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: date %q, expected YYYY-MM-DD", ErrInvalidFormat, s)
	}
	date, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q: %v", ErrInvalidFormat, s, err)
	}
	return date, nil
}

// ParseMonth разбирает месяц в формате YYYY-MM и возвращает его первый день (UTC)
func ParseMonth(s string) (time.Time, error) {
	if !monthPattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: month %q, expected YYYY-MM", ErrInvalidFormat, s)
	}
	month, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month %q: %v", ErrInvalidFormat, s, err)
	}
	return month, nil
}

// DateOnly обнуляет время, оставляя календарную дату в UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRange полуоткрытый диапазон дат [From, To)
type DateRange struct {
	From time.Time
	To   time.Time
}

// DayRange диапазон из одного дня
func DayRange(date time.Time) DateRange {
	from := DateOnly(date)
	return DateRange{From: from, To: from.AddDate(0, 0, 1)}
}

// WeekRange семь дней начиная с start
func WeekRange(start time.Time) DateRange {
	from := DateOnly(start)
	return DateRange{From: from, To: from.AddDate(0, 0, 7)}
}

// MonthRange календарный месяц, в который попадает month. Декабрь переходит в январь следующего года.
func MonthRange(month time.Time) DateRange {
	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{From: from, To: from.AddDate(0, 1, 0)}
}

// Contains проверяет, что дата попадает в диапазон
func (r DateRange) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(r.From) && d.Before(r.To)
}

// LastDay последний день диапазона включительно
func (r DateRange) LastDay() time.Time {
	return r.To.AddDate(0, 0, -1)
}
