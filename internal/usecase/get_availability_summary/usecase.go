package get_availability_summary

import (
	"context"
	"fmt"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

// UseCase use case сводки доступности бизнеса: еженедельный шаблон
// (независимо от конкретных дат) плюс закрытые даты на ближайшие 30 дней
type UseCase struct {
	hoursRepo       HoursRepository
	closedDatesRepo ClosedDatesRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hoursRepo HoursRepository,
	closedDatesRepo ClosedDatesRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		hoursRepo:       hoursRepo,
		closedDatesRepo: closedDatesRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет провайдер времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет сборку сводки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailabilitySummary: business=%s", req.BusinessID)

	if req.BusinessID == "" {
		return nil, fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	entries, err := uc.hoursRepo.GetByBusiness(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetAvailabilitySummary: failed to get business hours: business=%s: %v",
			req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	byDay := make(map[string]DaySummary, len(domain.WeekDayNames))
	for _, entry := range entries {
		dayName, ok := domain.DayName(entry.DayOfWeek)
		if !ok {
			continue
		}

		var availableTimes []types.TimeString
		if entry.HasSlots() {
			availableTimes = domain.SlotTimes(entry.SelectedSlots)
		} else {
			availableTimes = []types.TimeString{}
		}

		byDay[dayName] = DaySummary{
			IsOpen:         !entry.IsClosed,
			SelectedSlots:  entry.SelectedSlots,
			AvailableTimes: availableTimes,
		}
	}

	// Дни без записи расписания отдаются закрытыми
	for _, dayName := range domain.WeekDayNames {
		if _, ok := byDay[dayName]; !ok {
			byDay[dayName] = DaySummary{
				IsOpen:         false,
				SelectedSlots:  []int{},
				AvailableTimes: []types.TimeString{},
			}
		}
	}

	now := uc.timeProvider.Now()
	periodStart := now
	periodEnd := now.AddDate(0, 0, domain.SummaryWindowDays)

	// Список закрытых дат best-effort: при отказе сводка отдается без них
	closedDates := make([]string, 0)
	closed, err := uc.closedDatesRepo.ListByBusinessInRange(ctx, req.BusinessID, periodStart, periodEnd)
	if err != nil {
		uc.logger.Warn("GetAvailabilitySummary: could not get closed dates: business=%s: %v",
			req.BusinessID, err)
	} else {
		for _, c := range closed {
			closedDates = append(closedDates, c.DateString())
		}
	}

	uc.logger.Info("GetAvailabilitySummary: business=%s, days=%d, closed_dates=%d",
		req.BusinessID, len(byDay), len(closedDates))

	return &Response{
		BusinessID:    req.BusinessID,
		BusinessHours: byDay,
		ClosedDates:   closedDates,
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
	}, nil
}
