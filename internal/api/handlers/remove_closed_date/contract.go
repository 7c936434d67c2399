package remove_closed_date

import "context"

type ClosedDatesService interface {
	Remove(ctx context.Context, businessID, dateStr string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
