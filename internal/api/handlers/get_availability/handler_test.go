package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/bookhive/BHS-AvailabilityService/internal/usecase/get_availability"
	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

type fakeUseCase struct {
	executeFn func(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	return f.executeFn(ctx, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newRequest(businessID, date string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/"+businessID+"/availability?date="+date, nil)
	return mux.SetURLVars(req, map[string]string{"businessId": businessID})
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
			assert.Equal(t, "biz-1", req.BusinessID)
			return &getAvailability.Response{
				BusinessID:     req.BusinessID,
				Date:           req.Date,
				AvailableSlots: []types.TimeString{"09:00", "10:00"},
				BookedTimes:    []types.TimeString{"09:30"},
				Hours: &getAvailability.DayHours{
					Day:           "tuesday",
					IsOpen:        true,
					SelectedSlots: []int{8, 9, 10},
				},
			}, nil
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("biz-1", "2026-03-03"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-03-03", resp.Date)
	assert.Equal(t, []string{"09:00", "10:00"}, resp.AvailableSlots)
	assert.Equal(t, []string{"09:30"}, resp.BookedTimes)
	require.NotNil(t, resp.BusinessHours)
	assert.Equal(t, "tuesday", resp.BusinessHours.Day)
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("biz-1", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("biz-1", "03.03.2026"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseInternalError(t *testing.T) {
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
			return nil, errors.New("storage is down")
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("biz-1", "2026-03-03"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestToUseCaseRequest(t *testing.T) {
	req, err := ToUseCaseRequest("biz-1", "2026-03-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), req.Date)

	_, err = ToUseCaseRequest("biz-1", "not-a-date")
	require.Error(t, err)
}
