package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BookEasy-Service/pkg/calendar"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате "HH:MM"
type TimeString string

// NewTimeStringFromString создает TimeString с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeString создает TimeString из часов и минут момента t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if _, err := calendar.TimeToMinutes(string(t)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeString, err)
	}
	return nil
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	return calendar.TimeToMinutes(string(t))
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// IsBefore сравнивает два времени суток
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a < b
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner
// Postgres отдает колонки TIME как "HH:MM:SS", лишние секунды отбрасываются
func (t *TimeString) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}

	if len(s) > 5 {
		s = s[:5]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

// UnmarshalJSON валидирует значение при декодировании
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = ""
		return nil
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
