package closeddates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	"github.com/bookhive/BHS-AvailabilityService/pkg/dbmetrics"
	"github.com/bookhive/BHS-AvailabilityService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с закрытыми датами бизнеса
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория закрытых дат
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var closedDateColumns = []string{
	"id",
	"business_id",
	"closed_date",
	"reason",
	"created_at",
}

// ListByBusiness получает все закрытые даты бизнеса в порядке возрастания
func (r *Repository) ListByBusiness(ctx context.Context, businessID string) ([]*domain.ClosedDate, error) {
	query, args, err := psqlbuilder.Select(closedDateColumns...).
		From("closed_dates").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("closed_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryClosedDates(ctx, "ListByBusiness", query, args)
}

// ListByBusinessInRange получает закрытые даты бизнеса в диапазоне [from, to] включительно
func (r *Repository) ListByBusinessInRange(ctx context.Context, businessID string, from, to time.Time) ([]*domain.ClosedDate, error) {
	query, args, err := psqlbuilder.Select(closedDateColumns...).
		From("closed_dates").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.GtOrEq{"closed_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"closed_date": to.Format(domain.DateFormat)}).
		OrderBy("closed_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusinessInRange - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryClosedDates(ctx, "ListByBusinessInRange", query, args)
}

// GetByBusinessAndDate получает закрытую дату по (business_id, дата)
// Возвращает ErrClosedDateNotFound, если дата не закрыта
func (r *Repository) GetByBusinessAndDate(ctx context.Context, businessID string, date time.Time) (*domain.ClosedDate, error) {
	query, args, err := psqlbuilder.Select(closedDateColumns...).
		From("closed_dates").
		Where(squirrel.Eq{
			"business_id": businessID,
			"closed_date": date.Format(domain.DateFormat),
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndDate - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	entry, err := scanClosedDate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClosedDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndDate - scan row: %v", ErrScanRow, err)
	}

	return entry, nil
}

// Create добавляет закрытую дату
// Возвращает ErrDuplicateClosedDate, если дата уже закрыта
func (r *Repository) Create(ctx context.Context, closedDate *domain.ClosedDate) (*domain.ClosedDate, error) {
	query, args, err := psqlbuilder.Insert("closed_dates").
		Columns(
			"business_id",
			"closed_date",
			"reason",
		).
		Values(
			closedDate.BusinessID,
			closedDate.Date.Format(domain.DateFormat),
			closedDate.Reason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&closedDate.ID, &createdAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateClosedDate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	closedDate.CreatedAt = createdAt.Time

	return closedDate, nil
}

// Delete удаляет закрытую дату по (business_id, дата)
// Возвращает ErrClosedDateNotFound, если дата не была закрыта
func (r *Repository) Delete(ctx context.Context, businessID string, date time.Time) error {
	query, args, err := psqlbuilder.Delete("closed_dates").
		Where(squirrel.Eq{
			"business_id": businessID,
			"closed_date": date.Format(domain.DateFormat),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClosedDateNotFound
	}

	return nil
}

func (r *Repository) queryClosedDates(ctx context.Context, method, query string, args []interface{}) ([]*domain.ClosedDate, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	result := make([]*domain.ClosedDate, 0)

	for rows.Next() {
		entry, err := scanClosedDate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClosedDate(row rowScanner) (*domain.ClosedDate, error) {
	var entry domain.ClosedDate
	var reason sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(
		&entry.ID,
		&entry.BusinessID,
		&entry.Date,
		&reason,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Reason = reason.String
	entry.CreatedAt = createdAt.Time

	return &entry, nil
}
