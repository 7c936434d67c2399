package get_closed_dates

import (
	"context"

	"github.com/bookhive/BHS-AvailabilityService/internal/service/closeddates/models"
)

type ClosedDatesService interface {
	List(ctx context.Context, businessID string) ([]models.ClosedDateInfo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
