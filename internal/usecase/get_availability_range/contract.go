package get_availability_range

import (
	"context"
	"time"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

// HoursRepository интерфейс репозитория еженедельного расписания
type HoursRepository interface {
	GetByBusinessAndDay(ctx context.Context, businessID string, dayOfWeek int) (*domain.BusinessHours, error)
}

// ClosedDatesRepository интерфейс репозитория закрытых дат
type ClosedDatesRepository interface {
	GetByBusinessAndDate(ctx context.Context, businessID string, date time.Time) (*domain.ClosedDate, error)
}

// AppointmentsRepository интерфейс read-only репозитория бронирований
type AppointmentsRepository interface {
	GetBookedTimes(ctx context.Context, businessID string, date time.Time) ([]types.TimeString, error)
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
