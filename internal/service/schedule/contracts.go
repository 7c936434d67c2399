package schedule

import (
	"context"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
)

// HoursRepository интерфейс репозитория еженедельного расписания
type HoursRepository interface {
	GetByBusiness(ctx context.Context, businessID string) ([]*domain.BusinessHours, error)
	Upsert(ctx context.Context, entry *domain.BusinessHours) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
