package get_availability_summary

import (
	"time"

	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

// Request модель запроса сводки доступности
type Request struct {
	BusinessID string
}

// Response сводка доступности: еженедельный шаблон + ближайшие закрытые даты
// BusinessHours содержит ровно семь записей, ключ — имя дня недели
type Response struct {
	BusinessID    string
	BusinessHours map[string]DaySummary
	ClosedDates   []string // даты YYYY-MM-DD в окне [сегодня, сегодня+30 дней]
	PeriodStart   time.Time
	PeriodEnd     time.Time
}

// DaySummary шаблон одного дня недели
type DaySummary struct {
	IsOpen         bool
	SelectedSlots  []int
	AvailableTimes []types.TimeString
}
