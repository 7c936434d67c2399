package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookhive/BHS-AvailabilityService/internal/api/handlers"
	getAvailability "github.com/bookhive/BHS-AvailabilityService/internal/usecase/get_availability"
)

const (
	msgMissingBusinessID = "идентификатор бизнеса обязателен"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("GET /businesses/{id}/availability - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /businesses/{id}/availability - Missing date: business_id=%s", businessID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(businessID, dateStr)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/availability - Invalid date format: business_id=%s, date=%s: %v",
			businessID, dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput), errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /businesses/{id}/availability - Invalid input: business_id=%s: %v",
				businessID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /businesses/{id}/availability - Failed to get availability: business_id=%s, date=%s: %v",
				businessID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/availability - OK: business_id=%s, date=%s, slots=%d",
		businessID, dateStr, len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
