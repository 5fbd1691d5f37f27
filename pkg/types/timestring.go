package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString время в формате "HH:MM" (например, "09:30")
// Используется для хранения и передачи времени слотов без привязки к дате
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
// Допустимый формат: "HH:MM", где 0 <= HH <= 23 и 0 <= MM <= 59
func NewTimeStringFromString(s string) (TimeString, error) {
	if err := validate(s); err != nil {
		return "", err
	}
	return TimeString(s), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// Validate проверяет корректность формата времени
func (t TimeString) Validate() error {
	return validate(string(t))
}

// TotalMinutes возвращает количество минут с начала дня
func (t TimeString) TotalMinutes() (int, error) {
	h, m, err := parse(string(t))
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// AddMinutes возвращает новое время, сдвинутое на указанное количество минут
// Возвращает ошибку, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.TotalMinutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %s + %d minutes is out of day range", t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Equal проверяет равенство времен
func (t TimeString) Equal(other TimeString) bool {
	return string(t) == string(other)
}

// parse разбирает строку "HH:MM" на часы и минуты
func parse(s string) (hours, minutes int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}

	hours, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hours in %q: %v", s, err)
	}

	minutes, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minutes in %q: %v", s, err)
	}

	if hours < 0 || hours > 23 {
		return 0, 0, fmt.Errorf("hours out of range in %q", s)
	}
	if minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("minutes out of range in %q", s)
	}

	return hours, minutes, nil
}

// validate проверяет корректность строки времени
func validate(s string) error {
	_, _, err := parse(s)
	return err
}
