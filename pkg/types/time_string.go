package types

import (
	"fmt"
	"time"
)

const timeLayout = "15:04"

// TimeString время в формате HH:MM (без секунд и даты)
// Используется для времени начала слотов и бронирований
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("invalid time format %q, expected HH:MM: %w", s, err)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление HH:MM
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала суток
// Для невалидного значения возвращает -1
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// IsBefore возвращает true, если время t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если время t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Equal возвращает true, если время совпадает с other
func (t TimeString) Equal(other TimeString) bool {
	return t.Minutes() == other.Minutes()
}

// AddMinutes возвращает время через minutes минут
// Возвращает ошибку при выходе за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.Minutes()
	if total < 0 {
		return "", fmt.Errorf("invalid time value %q", string(t))
	}

	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %q + %d minutes is out of day bounds", string(t), minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}
