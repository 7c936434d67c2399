package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInternal возвращается при отказе нижележащих хранилищ
	// (расписание или бронирования недоступны)
	ErrInternal = errors.New("usecase: internal error")
)
