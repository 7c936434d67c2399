package get_availability_range

import (
	"context"
	"errors"
	"time"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	closedDatesRepo "github.com/bookhive/BHS-AvailabilityService/internal/infra/storage/closeddates"
	hoursRepo "github.com/bookhive/BHS-AvailabilityService/internal/infra/storage/hours"
	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

// UseCase use case расчета доступных времен на диапазон дат
//
// Каждая дата диапазона обрабатывается независимо; отказ хранилища на одной
// дате не прерывает обработку остальных — такая дата отдается с пустым
// списком времен. Внутри различие "нет доступности" / "ошибка запроса"
// сохраняется (dayAvailability), наружу обе схлопываются в пустой список
type UseCase struct {
	hoursRepo        HoursRepository
	closedDatesRepo  ClosedDatesRepository
	appointmentsRepo AppointmentsRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hoursRepo HoursRepository,
	closedDatesRepo ClosedDatesRepository,
	appointmentsRepo AppointmentsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		hoursRepo:        hoursRepo,
		closedDatesRepo:  closedDatesRepo,
		appointmentsRepo: appointmentsRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider подменяет провайдер времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// dayAvailability результат расчета одной даты: либо времена, либо ошибка
type dayAvailability struct {
	times []types.TimeString
	err   error
}

// Execute выполняет расчет доступности на диапазон дат [StartDate, EndDate] включительно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailabilityRange: business=%s, start=%s, end=%s",
		req.BusinessID,
		req.StartDate.Format(domain.DateFormat),
		req.EndDate.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailabilityRange: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	availability := make(map[string][]types.TimeString)

	// Обрабатываем даты последовательно по возрастанию
	for date := req.StartDate; !date.After(req.EndDate); date = date.AddDate(0, 0, 1) {
		dateStr := date.Format(domain.DateFormat)

		day := uc.resolveDay(ctx, req.BusinessID, date, now)
		if day.err != nil {
			// Отказ на одной дате не прерывает диапазон: дата отдается пустой
			uc.logger.Error("GetAvailabilityRange: failed to resolve date %s for business=%s: %v",
				dateStr, req.BusinessID, day.err)
			availability[dateStr] = []types.TimeString{}
			continue
		}

		availability[dateStr] = day.times
	}

	uc.logger.Info("GetAvailabilityRange: business=%s, resolved %d dates",
		req.BusinessID, len(availability))

	return &Response{
		BusinessID:   req.BusinessID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Availability: availability,
	}, nil
}

// resolveDay считает доступные времена на одну дату
// Шаги совпадают с одиночным расчетом: прошедшая дата -> расписание ->
// трансляция слотов -> закрытая дата -> занятые времена -> отсечение сегодня
func (uc *UseCase) resolveDay(ctx context.Context, businessID string, date, now time.Time) dayAvailability {
	if isDateInPast(date, now) {
		return dayAvailability{times: []types.TimeString{}}
	}

	stored := domain.ToStoredWeekday(date.Weekday())

	dayHours, err := uc.hoursRepo.GetByBusinessAndDay(ctx, businessID, stored)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			return dayAvailability{times: []types.TimeString{}}
		}
		return dayAvailability{err: err}
	}

	if dayHours.IsClosed || !dayHours.HasSlots() {
		return dayAvailability{times: []types.TimeString{}}
	}

	times := domain.SlotTimes(dayHours.SelectedSlots)

	// Отказ проверки закрытых дат не фатален: дата считается открытой (историческое поведение)
	closed, err := uc.closedDatesRepo.GetByBusinessAndDate(ctx, businessID, date)
	if err != nil && !errors.Is(err, closedDatesRepo.ErrClosedDateNotFound) {
		uc.logger.Warn("GetAvailabilityRange: could not check closed dates: business=%s, date=%s: %v",
			businessID, date.Format(domain.DateFormat), err)
	}
	if closed != nil {
		return dayAvailability{times: []types.TimeString{}}
	}

	booked, err := uc.appointmentsRepo.GetBookedTimes(ctx, businessID, date)
	if err != nil {
		return dayAvailability{err: err}
	}

	times = domain.SubtractTimes(times, booked)

	if isSameDay(date, now) {
		times = domain.TimesStrictlyAfter(times, types.NewTimeString(now))
	}

	return dayAvailability{times: times}
}

// isDateInPast проверяет, что дата строго раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
