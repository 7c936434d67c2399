package domain

import "time"

// ClosedDate represents a one-off calendar date on which a business is fully
// closed regardless of its recurring weekly hours.
type ClosedDate struct {
	ID         int64
	BusinessID string
	Date       time.Time // date only, time part is zero
	Reason     string

	CreatedAt time.Time
}

// DateString возвращает дату в формате YYYY-MM-DD
func (c *ClosedDate) DateString() string {
	return c.Date.Format(DateFormat)
}
