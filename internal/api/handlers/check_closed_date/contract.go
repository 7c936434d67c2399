package check_closed_date

import (
	"context"

	"github.com/bookhive/BHS-AvailabilityService/internal/service/closeddates/models"
)

type ClosedDatesService interface {
	Check(ctx context.Context, businessID, dateStr string) (*models.CheckResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
