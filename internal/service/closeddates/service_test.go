package closeddates

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	closedDatesRepo "github.com/bookhive/BHS-AvailabilityService/internal/infra/storage/closeddates"
)

type fakeClosedDatesRepo struct {
	listByBusinessFn       func(ctx context.Context, businessID string) ([]*domain.ClosedDate, error)
	getByBusinessAndDateFn func(ctx context.Context, businessID string, date time.Time) (*domain.ClosedDate, error)
	createFn               func(ctx context.Context, entry *domain.ClosedDate) (*domain.ClosedDate, error)
	deleteFn               func(ctx context.Context, businessID string, date time.Time) error
}

func (f *fakeClosedDatesRepo) ListByBusiness(ctx context.Context, businessID string) ([]*domain.ClosedDate, error) {
	return f.listByBusinessFn(ctx, businessID)
}

func (f *fakeClosedDatesRepo) GetByBusinessAndDate(ctx context.Context, businessID string, date time.Time) (*domain.ClosedDate, error) {
	return f.getByBusinessAndDateFn(ctx, businessID, date)
}

func (f *fakeClosedDatesRepo) Create(ctx context.Context, entry *domain.ClosedDate) (*domain.ClosedDate, error) {
	return f.createFn(ctx, entry)
}

func (f *fakeClosedDatesRepo) Delete(ctx context.Context, businessID string, date time.Time) error {
	return f.deleteFn(ctx, businessID, date)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return date
}

func TestList(t *testing.T) {
	repo := &fakeClosedDatesRepo{
		listByBusinessFn: func(ctx context.Context, businessID string) ([]*domain.ClosedDate, error) {
			return []*domain.ClosedDate{
				{Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Reason: "holiday"},
			}, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	dates, err := svc.List(context.Background(), "biz-1")

	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, "2026-03-10", dates[0].Date)
	assert.Equal(t, "holiday", dates[0].Reason)
}

func TestAdd_Duplicate(t *testing.T) {
	repo := &fakeClosedDatesRepo{
		createFn: func(ctx context.Context, entry *domain.ClosedDate) (*domain.ClosedDate, error) {
			return nil, closedDatesRepo.ErrDuplicateClosedDate
		},
	}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Add(context.Background(), "biz-1", "2026-03-10", "")

	require.ErrorIs(t, err, ErrAlreadyClosed)
}

func TestAdd_InvalidDate(t *testing.T) {
	svc := NewService(&fakeClosedDatesRepo{}, noopLogger{})

	_, err := svc.Add(context.Background(), "biz-1", "10.03.2026", "")

	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestAdd(t *testing.T) {
	repo := &fakeClosedDatesRepo{
		createFn: func(ctx context.Context, entry *domain.ClosedDate) (*domain.ClosedDate, error) {
			return entry, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	info, err := svc.Add(context.Background(), "biz-1", "2026-03-10", "renovation")

	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", info.Date)
	assert.Equal(t, "renovation", info.Reason)
}

func TestRemove_NotClosedIsIdempotent(t *testing.T) {
	repo := &fakeClosedDatesRepo{
		deleteFn: func(ctx context.Context, businessID string, date time.Time) error {
			return closedDatesRepo.ErrClosedDateNotFound
		},
	}
	svc := NewService(repo, noopLogger{})

	err := svc.Remove(context.Background(), "biz-1", "2026-03-10")

	require.NoError(t, err)
}

func TestBulkReplace_SetDifference(t *testing.T) {
	existing := []*domain.ClosedDate{
		{Date: mustDate(t, "2026-03-01")},
		{Date: mustDate(t, "2026-03-02")},
	}

	var added, removed []string
	repo := &fakeClosedDatesRepo{
		listByBusinessFn: func(ctx context.Context, businessID string) ([]*domain.ClosedDate, error) {
			return existing, nil
		},
		createFn: func(ctx context.Context, entry *domain.ClosedDate) (*domain.ClosedDate, error) {
			added = append(added, entry.DateString())
			assert.Equal(t, domain.DefaultClosedDateReason, entry.Reason)
			return entry, nil
		},
		deleteFn: func(ctx context.Context, businessID string, date time.Time) error {
			removed = append(removed, date.Format(domain.DateFormat))
			return nil
		},
	}
	svc := NewService(repo, noopLogger{})

	// 03-02 остается, 03-01 удаляется, 03-03 и 03-04 добавляются
	result, err := svc.BulkReplace(context.Background(), "biz-1",
		[]string{"2026-03-02", "2026-03-03", "2026-03-04"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 1, result.Removed)

	sort.Strings(added)
	assert.Equal(t, []string{"2026-03-03", "2026-03-04"}, added)
	assert.Equal(t, []string{"2026-03-01"}, removed)
}

func TestBulkReplace_InvalidDateRejectsWholeSet(t *testing.T) {
	svc := NewService(&fakeClosedDatesRepo{}, noopLogger{})

	_, err := svc.BulkReplace(context.Background(), "biz-1",
		[]string{"2026-03-02", "not-a-date"})

	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestBulkReplace_FailedInsertDoesNotAbort(t *testing.T) {
	repo := &fakeClosedDatesRepo{
		listByBusinessFn: func(ctx context.Context, businessID string) ([]*domain.ClosedDate, error) {
			return []*domain.ClosedDate{}, nil
		},
		createFn: func(ctx context.Context, entry *domain.ClosedDate) (*domain.ClosedDate, error) {
			if entry.DateString() == "2026-03-03" {
				return nil, errors.New("connection refused")
			}
			return entry, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	result, err := svc.BulkReplace(context.Background(), "biz-1",
		[]string{"2026-03-02", "2026-03-03", "2026-03-04"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 0, result.Removed)
}

func TestCheck(t *testing.T) {
	repo := &fakeClosedDatesRepo{
		getByBusinessAndDateFn: func(ctx context.Context, businessID string, date time.Time) (*domain.ClosedDate, error) {
			return &domain.ClosedDate{Date: date, Reason: "holiday"}, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	result, err := svc.Check(context.Background(), "biz-1", "2026-03-10")

	require.NoError(t, err)
	assert.True(t, result.IsClosed)
	require.NotNil(t, result.Reason)
	assert.Equal(t, "holiday", *result.Reason)
}

func TestCheck_NotClosed(t *testing.T) {
	repo := &fakeClosedDatesRepo{
		getByBusinessAndDateFn: func(ctx context.Context, businessID string, date time.Time) (*domain.ClosedDate, error) {
			return nil, closedDatesRepo.ErrClosedDateNotFound
		},
	}
	svc := NewService(repo, noopLogger{})

	result, err := svc.Check(context.Background(), "biz-1", "2026-03-10")

	require.NoError(t, err)
	assert.False(t, result.IsClosed)
	assert.Nil(t, result.Reason)
}
