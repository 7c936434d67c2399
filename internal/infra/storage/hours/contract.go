package hours

import "github.com/bookhive/BHS-AvailabilityService/pkg/dbmetrics"

// DBExecutor интерфейс исполнителя запросов (реализуется *sql.DB и *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor
