package get_closed_dates

import "github.com/bookhive/BHS-AvailabilityService/internal/service/closeddates/models"

// ListResponse HTTP response model
type ListResponse struct {
	ClosedDates []models.ClosedDateInfo `json:"closed_dates"`
}
