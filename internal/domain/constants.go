package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot grid constants
// The day is divided into fixed 30-minute slots starting at 05:00,
// so slot 0 is 05:00, slot 1 is 05:30 and so on
const (
	SlotStartHour       = 5
	SlotDurationMinutes = 30
	SlotsPerHour        = 2

	MinSlotIndex = 0
	MaxSlotIndex = 47
)

// Availability constants
const (
	// MaxRangeDays максимальный размер диапазона дат для запроса доступности
	MaxRangeDays = 30

	// SummaryWindowDays окно закрытых дат в сводке доступности (сегодня + 30 дней)
	SummaryWindowDays = 30
)

// DefaultClosedDateReason причина, проставляемая закрытым датам при bulk-обновлении
const DefaultClosedDateReason = "Manually closed"
