package get_availability_summary

import (
	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	getAvailabilitySummary "github.com/bookhive/BHS-AvailabilityService/internal/usecase/get_availability_summary"
)

// SummaryResponse HTTP response model
type SummaryResponse struct {
	BusinessHours map[string]DaySummary `json:"business_hours"`
	ClosedDates   []string              `json:"closed_dates"`
	SummaryPeriod SummaryPeriod         `json:"summary_period"`
}

// DaySummary шаблон одного дня недели
type DaySummary struct {
	IsOpen         bool     `json:"is_open"`
	SelectedSlots  []int    `json:"selected_slots"`
	AvailableTimes []string `json:"available_times"`
}

// SummaryPeriod окно, за которое собраны закрытые даты
type SummaryPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailabilitySummary.Response) *SummaryResponse {
	byDay := make(map[string]DaySummary, len(resp.BusinessHours))
	for dayName, day := range resp.BusinessHours {
		times := make([]string, len(day.AvailableTimes))
		for i, t := range day.AvailableTimes {
			times[i] = t.String()
		}

		byDay[dayName] = DaySummary{
			IsOpen:         day.IsOpen,
			SelectedSlots:  day.SelectedSlots,
			AvailableTimes: times,
		}
	}

	return &SummaryResponse{
		BusinessHours: byDay,
		ClosedDates:   resp.ClosedDates,
		SummaryPeriod: SummaryPeriod{
			Start: resp.PeriodStart.Format(domain.DateFormat),
			End:   resp.PeriodEnd.Format(domain.DateFormat),
		},
	}
}
