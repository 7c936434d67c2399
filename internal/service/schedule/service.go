package schedule

import (
	"context"
	"fmt"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	"github.com/bookhive/BHS-AvailabilityService/internal/service/schedule/models"
)

// Service сервис для работы с еженедельным расписанием бизнеса
type Service struct {
	hoursRepo HoursRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(hoursRepo HoursRepository, logger Logger) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		logger:    logger,
	}
}

// GetWeeklyHours возвращает расписание недели, ключ — имя дня
// Дни без записи в хранилище заполняются дефолтом отображения
// (понедельник–суббота открыты, воскресенье закрыто, слоты пустые).
// Дефолт косметический: расчет доступности отсутствующий день считает закрытым
func (s *Service) GetWeeklyHours(ctx context.Context, businessID string) (models.WeeklyHours, error) {
	s.logger.Info("GetWeeklyHours: business=%s", businessID)

	if businessID == "" {
		return nil, fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	entries, err := s.hoursRepo.GetByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("GetWeeklyHours: repository error: business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetWeeklyHours - repository error: %v", ErrInternal, err)
	}

	weekly := make(models.WeeklyHours, len(domain.WeekDayNames))

	for _, entry := range entries {
		dayName, ok := domain.DayName(entry.DayOfWeek)
		if !ok {
			continue
		}
		weekly[dayName] = models.DayHours{
			SelectedSlots: entry.SelectedSlots,
			IsOpen:        !entry.IsClosed,
		}
	}

	for _, dayName := range domain.WeekDayNames {
		if _, ok := weekly[dayName]; !ok {
			weekly[dayName] = models.DayHours{
				SelectedSlots: []int{},
				IsOpen:        domain.DefaultDayOpen(dayName),
			}
		}
	}

	return weekly, nil
}

// UpdateWeeklyHours сохраняет расписание нескольких дней за один вызов
// Ключи, не являющиеся именами дней недели, пропускаются; каждый день
// сохраняется независимо, отказ одного дня не прерывает остальные
func (s *Service) UpdateWeeklyHours(ctx context.Context, businessID string, weekly models.WeeklyHours) (*models.UpdateResult, error) {
	s.logger.Info("UpdateWeeklyHours: business=%s, days=%d", businessID, len(weekly))

	if businessID == "" {
		return nil, fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}
	if len(weekly) == 0 {
		return nil, fmt.Errorf("%w: no days provided", ErrInvalidInput)
	}

	result := &models.UpdateResult{}

	// Обходим дни в фиксированном порядке недели
	for _, dayName := range domain.WeekDayNames {
		dayData, ok := weekly[dayName]
		if !ok {
			continue
		}

		if err := s.upsertDay(ctx, businessID, dayName, dayData); err != nil {
			s.logger.Error("UpdateWeeklyHours: failed to save day %s: business=%s: %v",
				dayName, businessID, err)
			result.Failed++
			continue
		}
		result.Updated++
	}

	result.Skipped = len(weekly) - result.Updated - result.Failed

	s.logger.Info("UpdateWeeklyHours: business=%s, updated=%d, skipped=%d, failed=%d",
		businessID, result.Updated, result.Skipped, result.Failed)

	return result, nil
}

// UpdateDayHours сохраняет расписание одного дня недели
func (s *Service) UpdateDayHours(ctx context.Context, businessID, dayName string, dayData models.DayHours) error {
	s.logger.Info("UpdateDayHours: business=%s, day=%s", businessID, dayName)

	if businessID == "" {
		return fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}
	if !domain.IsValidDayName(dayName) {
		return fmt.Errorf("%w: %q", ErrInvalidDay, dayName)
	}

	if err := s.upsertDay(ctx, businessID, dayName, dayData); err != nil {
		s.logger.Error("UpdateDayHours: failed to save day %s: business=%s: %v",
			dayName, businessID, err)
		return fmt.Errorf("%w: UpdateDayHours - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) upsertDay(ctx context.Context, businessID, dayName string, dayData models.DayHours) error {
	dayOfWeek, ok := domain.DayNumber(dayName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidDay, dayName)
	}

	slots := dayData.SelectedSlots
	if slots == nil {
		slots = []int{}
	}

	entry := &domain.BusinessHours{
		BusinessID:    businessID,
		DayOfWeek:     dayOfWeek,
		IsClosed:      !dayData.IsOpen,
		SelectedSlots: slots,
	}

	return s.hoursRepo.Upsert(ctx, entry)
}
