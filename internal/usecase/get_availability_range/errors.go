package get_availability_range

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidRange возвращается, когда конец диапазона раньше начала
	ErrInvalidRange = errors.New("end date must not be before start date")

	// ErrRangeTooLarge возвращается, когда диапазон превышает максимальный размер
	ErrRangeTooLarge = errors.New("date range is too large")
)
