package get_availability_range

import (
	"time"

	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

// Request модель запроса доступности на диапазон дат
type Request struct {
	BusinessID string
	StartDate  time.Time
	EndDate    time.Time
}

// Response модель ответа: доступные времена по каждой дате диапазона
// В Availability ровно по одной записи на каждую дату [StartDate, EndDate],
// ключ — дата в формате YYYY-MM-DD
type Response struct {
	BusinessID   string
	StartDate    time.Time
	EndDate      time.Time
	Availability map[string][]types.TimeString
}
