package get_availability_summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

type fakeHoursRepo struct {
	getByBusinessFn func(ctx context.Context, businessID string) ([]*domain.BusinessHours, error)
}

func (f *fakeHoursRepo) GetByBusiness(ctx context.Context, businessID string) ([]*domain.BusinessHours, error) {
	return f.getByBusinessFn(ctx, businessID)
}

type fakeClosedDatesRepo struct {
	listByBusinessInRangeFn func(ctx context.Context, businessID string, from, to time.Time) ([]*domain.ClosedDate, error)
}

func (f *fakeClosedDatesRepo) ListByBusinessInRange(ctx context.Context, businessID string, from, to time.Time) ([]*domain.ClosedDate, error) {
	return f.listByBusinessInRangeFn(ctx, businessID, from, to)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func noClosedDatesRepo() *fakeClosedDatesRepo {
	return &fakeClosedDatesRepo{
		listByBusinessInRangeFn: func(ctx context.Context, businessID string, from, to time.Time) ([]*domain.ClosedDate, error) {
			return []*domain.ClosedDate{}, nil
		},
	}
}

func newTestUseCase(hours *fakeHoursRepo, closed *fakeClosedDatesRepo) *UseCase {
	return NewUseCase(hours, closed, noopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: testNow})
}

func TestExecute_MissingBusinessID(t *testing.T) {
	hours := &fakeHoursRepo{
		getByBusinessFn: func(ctx context.Context, businessID string) ([]*domain.BusinessHours, error) {
			return nil, nil
		},
	}
	uc := newTestUseCase(hours, noClosedDatesRepo())

	_, err := uc.Execute(context.Background(), &Request{BusinessID: ""})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NoRecordsGivesSevenClosedDays(t *testing.T) {
	hours := &fakeHoursRepo{
		getByBusinessFn: func(ctx context.Context, businessID string) ([]*domain.BusinessHours, error) {
			return []*domain.BusinessHours{}, nil
		},
	}
	uc := newTestUseCase(hours, noClosedDatesRepo())

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: "biz-1"})

	require.NoError(t, err)
	require.Len(t, resp.BusinessHours, 7)
	for _, dayName := range domain.WeekDayNames {
		day, ok := resp.BusinessHours[dayName]
		require.True(t, ok, "missing day %s", dayName)
		assert.False(t, day.IsOpen)
		assert.Empty(t, day.SelectedSlots)
		assert.Empty(t, day.AvailableTimes)
	}
	assert.Equal(t, []string{}, resp.ClosedDates)
}

func TestExecute_MixedDays(t *testing.T) {
	hours := &fakeHoursRepo{
		getByBusinessFn: func(ctx context.Context, businessID string) ([]*domain.BusinessHours, error) {
			return []*domain.BusinessHours{
				{DayOfWeek: 1, SelectedSlots: []int{8, 9}},           // понедельник
				{DayOfWeek: 2, IsClosed: true, SelectedSlots: []int{}}, // вторник
			}, nil
		},
	}
	uc := newTestUseCase(hours, noClosedDatesRepo())

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: "biz-1"})

	require.NoError(t, err)
	require.Len(t, resp.BusinessHours, 7)

	monday := resp.BusinessHours["monday"]
	assert.True(t, monday.IsOpen)
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, monday.AvailableTimes)

	tuesday := resp.BusinessHours["tuesday"]
	assert.False(t, tuesday.IsOpen)
	assert.Empty(t, tuesday.AvailableTimes)

	// Дни без записи закрыты
	assert.False(t, resp.BusinessHours["sunday"].IsOpen)
}

func TestExecute_ClosedDatesWindow(t *testing.T) {
	var gotFrom, gotTo time.Time
	closed := &fakeClosedDatesRepo{
		listByBusinessInRangeFn: func(ctx context.Context, businessID string, from, to time.Time) ([]*domain.ClosedDate, error) {
			gotFrom, gotTo = from, to
			return []*domain.ClosedDate{
				{Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	hours := &fakeHoursRepo{
		getByBusinessFn: func(ctx context.Context, businessID string) ([]*domain.BusinessHours, error) {
			return []*domain.BusinessHours{}, nil
		},
	}
	uc := newTestUseCase(hours, closed)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: "biz-1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-10"}, resp.ClosedDates)
	assert.Equal(t, testNow, gotFrom)
	assert.Equal(t, testNow.AddDate(0, 0, domain.SummaryWindowDays), gotTo)
}

func TestExecute_ClosedDatesFailureIsNotFatal(t *testing.T) {
	closed := &fakeClosedDatesRepo{
		listByBusinessInRangeFn: func(ctx context.Context, businessID string, from, to time.Time) ([]*domain.ClosedDate, error) {
			return nil, errors.New("connection refused")
		},
	}
	hours := &fakeHoursRepo{
		getByBusinessFn: func(ctx context.Context, businessID string) ([]*domain.BusinessHours, error) {
			return []*domain.BusinessHours{
				{DayOfWeek: 1, SelectedSlots: []int{8}},
			}, nil
		},
	}
	uc := newTestUseCase(hours, closed)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: "biz-1"})

	require.NoError(t, err)
	assert.Equal(t, []string{}, resp.ClosedDates)
	assert.True(t, resp.BusinessHours["monday"].IsOpen)
}

func TestExecute_HoursFailureIsFatal(t *testing.T) {
	hours := &fakeHoursRepo{
		getByBusinessFn: func(ctx context.Context, businessID string) ([]*domain.BusinessHours, error) {
			return nil, errors.New("connection refused")
		},
	}
	uc := newTestUseCase(hours, noClosedDatesRepo())

	_, err := uc.Execute(context.Background(), &Request{BusinessID: "biz-1"})

	require.ErrorIs(t, err, ErrInternal)
}
