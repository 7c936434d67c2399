package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	"github.com/bookhive/BHS-AvailabilityService/pkg/dbmetrics"
	"github.com/bookhive/BHS-AvailabilityService/pkg/psqlbuilder"
	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

// Repository read-only репозиторий бронирований
// Таблица appointments принадлежит подсистеме бронирования; сервис доступности
// её никогда не изменяет, ему нужны только занятые времена на дату
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBookedTimes получает времена всех бронирований бизнеса на дату,
// усеченные до HH:MM (секунды отбрасываются)
func (r *Repository) GetBookedTimes(ctx context.Context, businessID string, date time.Time) ([]types.TimeString, error) {
	query, args, err := psqlbuilder.Select("appointment_time::text").
		From("appointments").
		Where(squirrel.Eq{
			"business_id":      businessID,
			"appointment_date": date.Format(domain.DateFormat),
		}).
		OrderBy("appointment_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: GetBookedTimes - scan row: %v", ErrScanRow, err)
		}

		// appointment_time хранится как TIME (HH:MM:SS), усекаем до HH:MM
		if len(raw) < 5 {
			continue
		}

		t, err := types.NewTimeStringFromString(raw[:5])
		if err != nil {
			continue
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}
