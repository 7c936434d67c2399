package hours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	"github.com/bookhive/BHS-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с еженедельным расписанием бизнеса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var hoursColumns = []string{
	"id",
	"business_id",
	"day_of_week",
	"is_closed",
	"selected_slots",
	"created_at",
	"updated_at",
}

// GetByBusiness получает все записи расписания бизнеса (до семи, по одной на день недели)
func (r *Repository) GetByBusiness(ctx context.Context, businessID string) ([]*domain.BusinessHours, error) {
	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("business_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BusinessHours, 0, 7)

	for rows.Next() {
		entry, err := scanHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBusiness - scan row: %v", ErrScanRow, err)
		}
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByBusinessAndDay получает запись расписания на конкретный день недели
// dayOfWeek использует хранимую нумерацию (Sunday=0)
func (r *Repository) GetByBusinessAndDay(ctx context.Context, businessID string, dayOfWeek int) (*domain.BusinessHours, error) {
	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("business_hours").
		Where(squirrel.Eq{
			"business_id": businessID,
			"day_of_week": dayOfWeek,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndDay - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	entry, err := scanHours(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndDay - scan row: %v", ErrScanRow, err)
	}

	return entry, nil
}

// Upsert вставляет или обновляет запись расписания для (business_id, day_of_week)
func (r *Repository) Upsert(ctx context.Context, entry *domain.BusinessHours) error {
	slots := make(pq.Int64Array, len(entry.SelectedSlots))
	for i, s := range entry.SelectedSlots {
		slots[i] = int64(s)
	}

	query, args, err := psqlbuilder.Insert("business_hours").
		Columns(
			"business_id",
			"day_of_week",
			"is_closed",
			"selected_slots",
		).
		Values(
			entry.BusinessID,
			entry.DayOfWeek,
			entry.IsClosed,
			slots,
		).
		Suffix(`ON CONFLICT (business_id, day_of_week) DO UPDATE SET
			is_closed = EXCLUDED.is_closed,
			selected_slots = EXCLUDED.selected_slots,
			updated_at = NOW()
			RETURNING id`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHours(row rowScanner) (*domain.BusinessHours, error) {
	var entry domain.BusinessHours
	var slots pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&entry.ID,
		&entry.BusinessID,
		&entry.DayOfWeek,
		&entry.IsClosed,
		&slots,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.SelectedSlots = make([]int, len(slots))
	for i, s := range slots {
		entry.SelectedSlots[i] = int(s)
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return &entry, nil
}
