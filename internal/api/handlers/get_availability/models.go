package get_availability

import (
	"time"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	getAvailability "github.com/bookhive/BHS-AvailabilityService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date           string         `json:"date"`
	AvailableSlots []string       `json:"available_slots"`
	BookedTimes    []string       `json:"booked_times"`
	BusinessHours  *BusinessHours `json:"business_hours,omitempty"`
}

// BusinessHours расписание дня недели, по которому считалась доступность
type BusinessHours struct {
	Day           string `json:"day"`
	IsOpen        bool   `json:"is_open"`
	SelectedSlots []int  `json:"selected_slots"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(businessID, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		BusinessID: businessID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	available := make([]string, len(resp.AvailableSlots))
	for i, t := range resp.AvailableSlots {
		available[i] = t.String()
	}

	booked := make([]string, len(resp.BookedTimes))
	for i, t := range resp.BookedTimes {
		booked[i] = t.String()
	}

	response := &AvailabilityResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableSlots: available,
		BookedTimes:    booked,
	}

	if resp.Hours != nil {
		response.BusinessHours = &BusinessHours{
			Day:           resp.Hours.Day,
			IsOpen:        resp.Hours.IsOpen,
			SelectedSlots: resp.Hours.SelectedSlots,
		}
	}

	return response
}
