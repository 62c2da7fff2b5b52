// Package calendar содержит чистые функции для работы с временем суток и границами периодов.
// Все вычисления выполняются в локации переданной даты.
package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidFormat возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidFormat = errors.New("calendar: invalid time format, expected HH:MM")

const (
	// MinutesPerDay количество минут в сутках
	MinutesPerDay = 24 * 60

	// DaysPerWeek количество дней в неделе
	DaysPerWeek = 7
)

var hhmmRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// TimeToMinutes переводит строку "HH:MM" в количество минут от полуночи
// Часы и минуты должны быть двузначными: "09:05" - корректно, "9:05" - нет
func TimeToMinutes(hhmm string) (int, error) {
	m := hhmmRegex.FindStringSubmatch(hhmm)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, hhmm)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])

	return hours*60 + minutes, nil
}

// MinutesToTime переводит минуты от полуночи обратно в "HH:MM"
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WeekdayIndex возвращает индекс дня недели, где понедельник = 0, воскресенье = 6
// time.Weekday считает с воскресенья (0), поэтому воскресенье переносится в конец недели
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % DaysPerWeek
}

// At возвращает момент времени на дату date со смещением minutes от полуночи
func At(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}

// StartOfDay возвращает полночь дня date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDay возвращает последнюю наносекунду дня date
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), date.Location())
}

// StartOfWeek возвращает полночь понедельника недели, в которую попадает date
func StartOfWeek(date time.Time) time.Time {
	start := StartOfDay(date)
	return start.AddDate(0, 0, -WeekdayIndex(date))
}

// EndOfWeek возвращает последнюю наносекунду воскресенья недели, в которую попадает date
func EndOfWeek(date time.Time) time.Time {
	return EndOfDay(StartOfWeek(date).AddDate(0, 0, DaysPerWeek-1))
}

// StartOfMonth возвращает полночь первого числа месяца date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// SameDay проверяет, что две даты относятся к одному и тому же календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
