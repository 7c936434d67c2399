package update_business_hours

import (
	"context"

	"github.com/bookhive/BHS-AvailabilityService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateWeeklyHours(ctx context.Context, businessID string, weekly models.WeeklyHours) (*models.UpdateResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
