package update_day_hours

import (
	"context"

	"github.com/bookhive/BHS-AvailabilityService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateDayHours(ctx context.Context, businessID, dayName string, dayData models.DayHours) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
