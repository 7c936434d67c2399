package get_availability_range

import (
	"fmt"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID == "" {
		return fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidDate)
	}

	if req.EndDate.Before(req.StartDate) {
		return ErrInvalidRange
	}

	if rangeDays(req) > domain.MaxRangeDays {
		return fmt.Errorf("%w: range cannot exceed %d days", ErrRangeTooLarge, domain.MaxRangeDays)
	}

	return nil
}

// rangeDays возвращает размер диапазона в днях (без учета включенности границ)
func rangeDays(req *Request) int {
	return int(req.EndDate.Sub(req.StartDate).Hours() / 24)
}
