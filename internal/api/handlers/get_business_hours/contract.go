package get_business_hours

import (
	"context"

	"github.com/bookhive/BHS-AvailabilityService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeeklyHours(ctx context.Context, businessID string) (models.WeeklyHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
