package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается, если строка не соответствует формату HH:MM
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, если результат арифметики выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString время суток в формате "HH:MM"
// Используется на внешних границах (JSON, БД); арифметика интервалов выполняется на time.Time
type TimeString string

// NewTimeString создает TimeString из time.Time (дата и секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит и нормализует строку вида "HH:MM" (допускается "H:MM" и "HH:MM:SS")
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if len(s) > len("15:04") && strings.Count(s, ":") == 2 {
		// PostgreSQL TIME приходит как "09:00:00"
		s = s[:strings.LastIndex(s, ":")]
	}

	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return NewTimeString(t), nil
}

// MustTimeString паникует при некорректной строке, используется для констант и тестов
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на n минут, в пределах тех же суток
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total := m + n
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s%+d min", ErrTimeOverflow, t, n)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore сравнивает два значения; некорректные значения считаются несравнимыми
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a < b
}

// IsAfter сравнивает два значения; некорректные значения считаются несравнимыми
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// On материализует время на указанную дату в локации loc
func (t TimeString) On(date time.Time, loc *time.Location) (time.Time, error) {
	m, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, loc), nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}
