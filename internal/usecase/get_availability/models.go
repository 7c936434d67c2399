package get_availability

import (
	"time"

	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

// Request модель запроса доступных времен на одну дату
type Request struct {
	BusinessID string    // Идентификатор бизнеса
	Date       time.Time // Дата (без времени)
}

// Response модель ответа со списком доступных времен
type Response struct {
	BusinessID     string             // Идентификатор бизнеса
	Date           time.Time          // Запрошенная дата
	AvailableSlots []types.TimeString // Доступные времена начала (HH:MM, по возрастанию)
	BookedTimes    []types.TimeString // Занятые времена на дату (для отладки клиентом)
	Hours          *DayHours          // Расписание дня недели (nil, если до него не дошли)
}

// DayHours расписание дня недели, по которому считалась доступность
type DayHours struct {
	Day           string // Имя дня недели (monday..sunday)
	IsOpen        bool
	SelectedSlots []int
}

// emptyResponse ответ без доступных времен
func emptyResponse(req *Request) *Response {
	return &Response{
		BusinessID:     req.BusinessID,
		Date:           req.Date,
		AvailableSlots: []types.TimeString{},
		BookedTimes:    []types.TimeString{},
	}
}
