package closeddates

import "errors"

var (
	// ErrClosedDateNotFound возвращается, когда закрытая дата не найдена
	ErrClosedDateNotFound = errors.New("closeddates.repository: closed date not found")

	// ErrDuplicateClosedDate возвращается при попытке повторно закрыть ту же дату
	ErrDuplicateClosedDate = errors.New("closeddates.repository: date is already closed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("closeddates.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("closeddates.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("closeddates.repository: failed to scan row")
)
