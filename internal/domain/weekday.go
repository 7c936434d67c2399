package domain

import "time"

// Business hours are stored with day_of_week numbered Sunday=0..Saturday=6.
// All translation between time.Weekday and the stored numbering lives here;
// call sites must never do the arithmetic themselves.

// storedWeekday явная таблица соответствия time.Weekday -> хранимый day_of_week
var storedWeekday = map[time.Weekday]int{
	time.Sunday:    0,
	time.Monday:    1,
	time.Tuesday:   2,
	time.Wednesday: 3,
	time.Thursday:  4,
	time.Friday:    5,
	time.Saturday:  6,
}

// storedDayNames обратная таблица: хранимый day_of_week -> имя дня
var storedDayNames = map[int]string{
	0: "sunday",
	1: "monday",
	2: "tuesday",
	3: "wednesday",
	4: "thursday",
	5: "friday",
	6: "saturday",
}

// dayNumbers таблица: имя дня -> хранимый day_of_week
var dayNumbers = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

// WeekDayNames имена дней недели в порядке отображения (понедельник первый)
var WeekDayNames = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// ToStoredWeekday переводит time.Weekday в хранимый номер дня недели (Sunday=0)
func ToStoredWeekday(w time.Weekday) int {
	return storedWeekday[w]
}

// DayName возвращает имя дня по хранимому номеру day_of_week
func DayName(stored int) (string, bool) {
	name, ok := storedDayNames[stored]
	return name, ok
}

// DayNumber возвращает хранимый номер day_of_week по имени дня
func DayNumber(name string) (int, bool) {
	n, ok := dayNumbers[name]
	return n, ok
}

// IsValidDayName проверяет, что name — корректное имя дня недели
func IsValidDayName(name string) bool {
	_, ok := dayNumbers[name]
	return ok
}
