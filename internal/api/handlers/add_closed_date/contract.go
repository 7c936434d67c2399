package add_closed_date

import (
	"context"

	"github.com/bookhive/BHS-AvailabilityService/internal/service/closeddates/models"
)

type ClosedDatesService interface {
	Add(ctx context.Context, businessID, dateStr, reason string) (*models.ClosedDateInfo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
