package get_availability_range

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookhive/BHS-AvailabilityService/internal/api/handlers"
	getAvailabilityRange "github.com/bookhive/BHS-AvailabilityService/internal/usecase/get_availability_range"
)

const (
	msgMissingBusinessID = "идентификатор бизнеса обязателен"
	msgMissingDates      = "параметры start_date и end_date обязательны"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange      = "end_date не может быть раньше start_date"
	msgRangeTooLarge     = "диапазон дат не может превышать 30 дней"
)

type Handler struct {
	useCase GetAvailabilityRangeUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/availability/range
// Query params: start_date, end_date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("GET /businesses/{id}/availability/range - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	startStr := r.URL.Query().Get("start_date")
	endStr := r.URL.Query().Get("end_date")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /businesses/{id}/availability/range - Missing dates: business_id=%s", businessID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(businessID, startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/availability/range - Invalid date format: business_id=%s, start=%s, end=%s: %v",
			businessID, startStr, endStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailabilityRange.ErrInvalidRange):
			h.logger.Warn("GET /businesses/{id}/availability/range - Inverted range: business_id=%s, start=%s, end=%s",
				businessID, startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailabilityRange.ErrRangeTooLarge):
			h.logger.Warn("GET /businesses/{id}/availability/range - Range too large: business_id=%s, start=%s, end=%s",
				businessID, startStr, endStr)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getAvailabilityRange.ErrInvalidInput), errors.Is(err, getAvailabilityRange.ErrInvalidDate):
			h.logger.Warn("GET /businesses/{id}/availability/range - Invalid input: business_id=%s: %v",
				businessID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /businesses/{id}/availability/range - Failed: business_id=%s: %v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/availability/range - OK: business_id=%s, dates=%d",
		businessID, len(result.Availability))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
