package get_availability_range

import (
	"time"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	getAvailabilityRange "github.com/bookhive/BHS-AvailabilityService/internal/usecase/get_availability_range"
)

// AvailabilityRangeResponse HTTP response model
type AvailabilityRangeResponse struct {
	Availability map[string][]string `json:"availability"`
	StartDate    string              `json:"start_date"`
	EndDate      string              `json:"end_date"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(businessID, startStr, endStr string) (*getAvailabilityRange.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		return nil, err
	}

	return &getAvailabilityRange.Request{
		BusinessID: businessID,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailabilityRange.Response) *AvailabilityRangeResponse {
	availability := make(map[string][]string, len(resp.Availability))
	for dateStr, times := range resp.Availability {
		converted := make([]string, len(times))
		for i, t := range times {
			converted[i] = t.String()
		}
		availability[dateStr] = converted
	}

	return &AvailabilityRangeResponse{
		Availability: availability,
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		EndDate:      resp.EndDate.Format(domain.DateFormat),
	}
}
