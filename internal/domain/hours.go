package domain

import "time"

// BusinessHours represents the recurring weekly hours of a business for a
// single day of week. DayOfWeek uses the stored numbering (Sunday=0).
type BusinessHours struct {
	ID            int64
	BusinessID    string
	DayOfWeek     int
	IsClosed      bool
	SelectedSlots []int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSlots returns true if the day has at least one selected slot
func (h *BusinessHours) HasSlots() bool {
	return len(h.SelectedSlots) > 0
}

// IsBookable returns true if the day accepts bookings at all:
// a closed day is never bookable regardless of the stored slot set
func (h *BusinessHours) IsBookable() bool {
	return !h.IsClosed && h.HasSlots()
}

// DefaultDayOpen возвращает дефолтный флаг открытости дня для отображения
// (понедельник–суббота открыты, воскресенье закрыто). Используется только
// при выдаче расписания наружу, на расчет доступности не влияет:
// отсутствующая запись дня всегда трактуется как закрытый день
func DefaultDayOpen(dayName string) bool {
	return dayName != "sunday"
}
