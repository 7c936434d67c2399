package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	closedDatesRepo "github.com/bookhive/BHS-AvailabilityService/internal/infra/storage/closeddates"
	hoursRepo "github.com/bookhive/BHS-AvailabilityService/internal/infra/storage/hours"
	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

// UseCase use case расчета доступных времен бронирования на одну дату
//
// Порядок проверок фиксирован и совместим с историческим поведением:
// прошедшая дата -> расписание дня недели -> трансляция слотов ->
// закрытая дата -> вычитание занятых времен -> отсечение прошедших времен сегодня
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

// Execute выполняет расчет доступных времен на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: business=%s, date=%s",
		req.BusinessID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Прошедшие даты недоступны целиком, без обращений к хранилищу
	if isDateInPast(req.Date, now) {
		return emptyResponse(req), nil
	}

	// 3. Расписание на день недели запрошенной даты
	stored := domain.ToStoredWeekday(req.Date.Weekday())

	dayHours, err := uc.hoursRepo.GetByBusinessAndDay(ctx, req.BusinessID, stored)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			// Отсутствующая запись дня трактуется как закрытый день
			return emptyResponse(req), nil
		}
		uc.logger.Error("GetAvailability: failed to get business hours: business=%s, day=%d: %v",
			req.BusinessID, stored, err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	if dayHours.IsClosed || !dayHours.HasSlots() {
		return emptyResponse(req), nil
	}

	// 4. Трансляция индексов слотов во времена начала (по возрастанию)
	availableTimes := domain.SlotTimes(dayHours.SelectedSlots)

	dayName, _ := domain.DayName(stored)
	response := &Response{
		BusinessID:     req.BusinessID,
		Date:           req.Date,
		AvailableSlots: availableTimes,
		BookedTimes:    []types.TimeString{},
		Hours: &DayHours{
			Day:           dayName,
			IsOpen:        !dayHours.IsClosed,
			SelectedSlots: dayHours.SelectedSlots,
		},
	}

	// 5. Разовая закрытая дата полностью перекрывает еженедельное расписание.
	// Отказ этой проверки намеренно не фатален: дата считается открытой,
	// расчет продолжается (историческое поведение, не менять без продуктового решения)
	closed, err := uc.closedDatesRepo.GetByBusinessAndDate(ctx, req.BusinessID, req.Date)
	if err != nil && !errors.Is(err, closedDatesRepo.ErrClosedDateNotFound) {
		uc.logger.Warn("GetAvailability: could not check closed dates: business=%s, date=%s: %v",
			req.BusinessID, req.Date.Format(domain.DateFormat), err)
	}
	if closed != nil {
		response.AvailableSlots = []types.TimeString{}
		return response, nil
	}

	// 6. Вычитаем занятые времена
	bookedTimes, err := uc.appointmentsRepo.GetBookedTimes(ctx, req.BusinessID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get booked times: business=%s, date=%s: %v",
			req.BusinessID, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	response.BookedTimes = bookedTimes
	response.AvailableSlots = domain.SubtractTimes(availableTimes, bookedTimes)

	// 7. Сегодня доступны только строго будущие времена
	if isSameDay(req.Date, now) {
		response.AvailableSlots = domain.TimesStrictlyAfter(response.AvailableSlots, types.NewTimeString(now))
	}

	uc.logger.Info("GetAvailability: business=%s, date=%s, available=%d, booked=%d",
		req.BusinessID, req.Date.Format(domain.DateFormat),
		len(response.AvailableSlots), len(bookedTimes))

	return response, nil
}
