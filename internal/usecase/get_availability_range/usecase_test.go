package get_availability_range

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhive/BHS-AvailabilityService/internal/domain"
	closedDatesRepo "github.com/bookhive/BHS-AvailabilityService/internal/infra/storage/closeddates"
	hoursRepo "github.com/bookhive/BHS-AvailabilityService/internal/infra/storage/hours"
	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

type fakeHoursRepo struct {
	getByBusinessAndDayFn func(ctx context.Context, businessID string, dayOfWeek int) (*domain.BusinessHours, error)
}

func (f *fakeHoursRepo) GetByBusinessAndDay(ctx context.Context, businessID string, dayOfWeek int) (*domain.BusinessHours, error) {
	return f.getByBusinessAndDayFn(ctx, businessID, dayOfWeek)
}

type fakeClosedDatesRepo struct {
	getByBusinessAndDateFn func(ctx context.Context, businessID string, date time.Time) (*domain.ClosedDate, error)
}

func (f *fakeClosedDatesRepo) GetByBusinessAndDate(ctx context.Context, businessID string, date time.Time) (*domain.ClosedDate, error) {
	return f.getByBusinessAndDateFn(ctx, businessID, date)
}

type fakeAppointmentsRepo struct {
	getBookedTimesFn func(ctx context.Context, businessID string, date time.Time) ([]types.TimeString, error)
}

func (f *fakeAppointmentsRepo) GetBookedTimes(ctx context.Context, businessID string, date time.Time) ([]types.TimeString, error) {
	return f.getBookedTimesFn(ctx, businessID, date)
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

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) // понедельник

func openEveryDayRepo(slots []int) *fakeHoursRepo {
	return &fakeHoursRepo{
		getByBusinessAndDayFn: func(ctx context.Context, businessID string, dayOfWeek int) (*domain.BusinessHours, error) {
			return &domain.BusinessHours{
				BusinessID:    businessID,
				DayOfWeek:     dayOfWeek,
				SelectedSlots: slots,
			}, nil
		},
	}
}

func notClosedRepo() *fakeClosedDatesRepo {
	return &fakeClosedDatesRepo{
		getByBusinessAndDateFn: func(ctx context.Context, businessID string, date time.Time) (*domain.ClosedDate, error) {
			return nil, closedDatesRepo.ErrClosedDateNotFound
		},
	}
}

func noBookingsRepo() *fakeAppointmentsRepo {
	return &fakeAppointmentsRepo{
		getBookedTimesFn: func(ctx context.Context, businessID string, date time.Time) ([]types.TimeString, error) {
			return []types.TimeString{}, nil
		},
	}
}

func newTestUseCase(hours *fakeHoursRepo, closed *fakeClosedDatesRepo, appts *fakeAppointmentsRepo) *UseCase {
	return NewUseCase(hours, closed, appts, noopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: testNow})
}

func TestExecute_OneEntryPerDate(t *testing.T) {
	uc := newTestUseCase(openEveryDayRepo([]int{8, 9}), notClosedRepo(), noBookingsRepo())

	start := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: "biz-1",
		StartDate:  start,
		EndDate:    end,
	})

	require.NoError(t, err)
	require.Len(t, resp.Availability, 5)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		times, ok := resp.Availability[d.Format(domain.DateFormat)]
		require.True(t, ok, "missing entry for %s", d.Format(domain.DateFormat))
		assert.Equal(t, []types.TimeString{"09:00", "09:30"}, times)
	}
}

func TestExecute_SingleDayRange(t *testing.T) {
	uc := newTestUseCase(openEveryDayRepo([]int{8}), notClosedRepo(), noBookingsRepo())

	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: "biz-1",
		StartDate:  date,
		EndDate:    date,
	})

	require.NoError(t, err)
	require.Len(t, resp.Availability, 1)
	assert.Equal(t, []types.TimeString{"09:00"}, resp.Availability["2026-03-03"])
}

func TestExecute_EndBeforeStart(t *testing.T) {
	uc := newTestUseCase(openEveryDayRepo([]int{8}), notClosedRepo(), noBookingsRepo())

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: "biz-1",
		StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_RangeTooLarge(t *testing.T) {
	uc := newTestUseCase(openEveryDayRepo([]int{8}), notClosedRepo(), noBookingsRepo())

	start := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: "biz-1",
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, domain.MaxRangeDays+1),
	})

	require.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestExecute_MaxRangeAccepted(t *testing.T) {
	uc := newTestUseCase(openEveryDayRepo([]int{8}), notClosedRepo(), noBookingsRepo())

	start := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: "biz-1",
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, domain.MaxRangeDays),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Availability, domain.MaxRangeDays+1)
}

func TestExecute_FailedDateDoesNotAbortRange(t *testing.T) {
	badDate := "2026-03-04"
	appts := &fakeAppointmentsRepo{
		getBookedTimesFn: func(ctx context.Context, businessID string, date time.Time) ([]types.TimeString, error) {
			if date.Format(domain.DateFormat) == badDate {
				return nil, errors.New("connection refused")
			}
			return []types.TimeString{}, nil
		},
	}
	uc := newTestUseCase(openEveryDayRepo([]int{8}), notClosedRepo(), appts)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: "biz-1",
		StartDate:  time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Availability, 3)
	assert.Equal(t, []types.TimeString{"09:00"}, resp.Availability["2026-03-03"])
	assert.Empty(t, resp.Availability[badDate])
	assert.Equal(t, []types.TimeString{"09:00"}, resp.Availability["2026-03-05"])
}

func TestExecute_PastDatesInRangeAreEmpty(t *testing.T) {
	hours := &fakeHoursRepo{
		getByBusinessAndDayFn: func(ctx context.Context, businessID string, dayOfWeek int) (*domain.BusinessHours, error) {
			return nil, hoursRepo.ErrHoursNotFound
		},
	}
	uc := newTestUseCase(hours, notClosedRepo(), noBookingsRepo())

	// Диапазон начинается за день до "сегодня"
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: "biz-1",
		StartDate:  testNow.AddDate(0, 0, -1),
		EndDate:    testNow.AddDate(0, 0, 1),
	})

	require.NoError(t, err)
	require.Len(t, resp.Availability, 3)
	assert.Empty(t, resp.Availability["2026-03-01"])
}
