package get_availability_summary

import (
	"context"
	"time"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
)

// HoursRepository интерфейс репозитория еженедельного расписания
type HoursRepository interface {
	GetByBusiness(ctx context.Context, businessID string) ([]*domain.BusinessHours, error)
}

// ClosedDatesRepository интерфейс репозитория закрытых дат
type ClosedDatesRepository interface {
	ListByBusinessInRange(ctx context.Context, businessID string, from, to time.Time) ([]*domain.ClosedDate, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
