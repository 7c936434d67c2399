package update_closed_dates_bulk

import (
	"context"

	"github.com/bookhive/BHS-AvailabilityService/internal/service/closeddates/models"
)

type ClosedDatesService interface {
	BulkReplace(ctx context.Context, businessID string, dates []string) (*models.BulkUpdateResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
