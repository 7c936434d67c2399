package closeddates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	closedDatesRepo "github.com/bookhive/BHS-AvailabilityService/internal/infra/storage/closeddates"
	"github.com/bookhive/BHS-AvailabilityService/internal/service/closeddates/models"
)

// Service сервис управления закрытыми датами бизнеса
type Service struct {
	repo   ClosedDatesRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса закрытых дат
func NewService(repo ClosedDatesRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает все закрытые даты бизнеса
func (s *Service) List(ctx context.Context, businessID string) ([]models.ClosedDateInfo, error) {
	s.logger.Info("ListClosedDates: business=%s", businessID)

	if businessID == "" {
		return nil, fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	entries, err := s.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("ListClosedDates: repository error: business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]models.ClosedDateInfo, 0, len(entries))
	for _, entry := range entries {
		result = append(result, models.ClosedDateInfo{
			Date:   entry.DateString(),
			Reason: entry.Reason,
		})
	}

	return result, nil
}

// Add закрывает одну дату
// Повторное закрытие той же даты возвращает ErrAlreadyClosed
func (s *Service) Add(ctx context.Context, businessID, dateStr, reason string) (*models.ClosedDateInfo, error) {
	s.logger.Info("AddClosedDate: business=%s, date=%s", businessID, dateStr)

	if businessID == "" {
		return nil, fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	date, err := parseDate(dateStr)
	if err != nil {
		s.logger.Warn("AddClosedDate: invalid date %q: %v", dateStr, err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.ClosedDate{
		BusinessID: businessID,
		Date:       date,
		Reason:     reason,
	})
	if err != nil {
		if errors.Is(err, closedDatesRepo.ErrDuplicateClosedDate) {
			s.logger.Warn("AddClosedDate: date %s is already closed for business=%s", dateStr, businessID)
			return nil, ErrAlreadyClosed
		}
		s.logger.Error("AddClosedDate: repository error: business=%s, date=%s: %v", businessID, dateStr, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	return &models.ClosedDateInfo{
		Date:   created.DateString(),
		Reason: created.Reason,
	}, nil
}

// Remove открывает ранее закрытую дату
// Удаление незакрытой даты не является ошибкой (идемпотентно)
func (s *Service) Remove(ctx context.Context, businessID, dateStr string) error {
	s.logger.Info("RemoveClosedDate: business=%s, date=%s", businessID, dateStr)

	if businessID == "" {
		return fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	date, err := parseDate(dateStr)
	if err != nil {
		s.logger.Warn("RemoveClosedDate: invalid date %q: %v", dateStr, err)
		return err
	}

	if err := s.repo.Delete(ctx, businessID, date); err != nil {
		if errors.Is(err, closedDatesRepo.ErrClosedDateNotFound) {
			s.logger.Info("RemoveClosedDate: date %s was not closed for business=%s", dateStr, businessID)
			return nil
		}
		s.logger.Error("RemoveClosedDate: repository error: business=%s, date=%s: %v", businessID, dateStr, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	return nil
}

// BulkReplace заменяет набор закрытых дат бизнеса на переданный
// Вычисляется разность множеств с текущим набором: новые даты вставляются,
// отсутствующие в новом наборе удаляются. Каждая вставка и удаление
// независимы: отказ одной операции логируется и не прерывает остальные
func (s *Service) BulkReplace(ctx context.Context, businessID string, dates []string) (*models.BulkUpdateResult, error) {
	s.logger.Info("BulkReplaceClosedDates: business=%s, dates=%d", businessID, len(dates))

	if businessID == "" {
		return nil, fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	// Сначала валидируем весь набор
	parsed := make(map[string]time.Time, len(dates))
	for _, dateStr := range dates {
		date, err := parseDate(dateStr)
		if err != nil {
			s.logger.Warn("BulkReplaceClosedDates: invalid date %q: %v", dateStr, err)
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
		}
		parsed[dateStr] = date
	}

	existing, err := s.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("BulkReplaceClosedDates: failed to list existing dates: business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: BulkReplace - repository error: %v", ErrInternal, err)
	}

	existingSet := make(map[string]struct{}, len(existing))
	for _, entry := range existing {
		existingSet[entry.DateString()] = struct{}{}
	}

	result := &models.BulkUpdateResult{}

	// Вставляем даты, которых еще нет
	for dateStr, date := range parsed {
		if _, ok := existingSet[dateStr]; ok {
			continue
		}

		_, err := s.repo.Create(ctx, &domain.ClosedDate{
			BusinessID: businessID,
			Date:       date,
			Reason:     domain.DefaultClosedDateReason,
		})
		if err != nil {
			s.logger.Error("BulkReplaceClosedDates: failed to add date %s: business=%s: %v",
				dateStr, businessID, err)
			continue
		}
		result.Added++
	}

	// Удаляем даты, которых нет в новом наборе
	for _, entry := range existing {
		dateStr := entry.DateString()
		if _, ok := parsed[dateStr]; ok {
			continue
		}

		if err := s.repo.Delete(ctx, businessID, entry.Date); err != nil {
			s.logger.Error("BulkReplaceClosedDates: failed to remove date %s: business=%s: %v",
				dateStr, businessID, err)
			continue
		}
		result.Removed++
	}

	s.logger.Info("BulkReplaceClosedDates: business=%s, added=%d, removed=%d",
		businessID, result.Added, result.Removed)

	return result, nil
}

// Check проверяет, закрыта ли конкретная дата
func (s *Service) Check(ctx context.Context, businessID, dateStr string) (*models.CheckResult, error) {
	s.logger.Info("CheckClosedDate: business=%s, date=%s", businessID, dateStr)

	if businessID == "" {
		return nil, fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	entry, err := s.repo.GetByBusinessAndDate(ctx, businessID, date)
	if err != nil {
		if errors.Is(err, closedDatesRepo.ErrClosedDateNotFound) {
			return &models.CheckResult{IsClosed: false}, nil
		}
		s.logger.Error("CheckClosedDate: repository error: business=%s, date=%s: %v", businessID, dateStr, err)
		return nil, fmt.Errorf("%w: Check - repository error: %v", ErrInternal, err)
	}

	reason := entry.Reason
	return &models.CheckResult{
		IsClosed: true,
		Reason:   &reason,
	}, nil
}

func parseDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
	}
	return date, nil
}
