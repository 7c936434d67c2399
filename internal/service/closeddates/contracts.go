package closeddates

import (
	"context"
	"time"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
)

// ClosedDatesRepository интерфейс репозитория закрытых дат
type ClosedDatesRepository interface {
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.ClosedDate, error)
	GetByBusinessAndDate(ctx context.Context, businessID string, date time.Time) (*domain.ClosedDate, error)
	Create(ctx context.Context, closedDate *domain.ClosedDate) (*domain.ClosedDate, error)
	Delete(ctx context.Context, businessID string, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
