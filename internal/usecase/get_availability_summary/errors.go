package get_availability_summary

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при отказе хранилища расписания
	ErrInternal = errors.New("usecase: internal error")
)
