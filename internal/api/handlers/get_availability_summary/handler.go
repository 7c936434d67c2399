package get_availability_summary

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookhive/BHS-AvailabilityService/internal/api/handlers"
	getAvailabilitySummary "github.com/bookhive/BHS-AvailabilityService/internal/usecase/get_availability_summary"
)

const msgMissingBusinessID = "идентификатор бизнеса обязателен"

type Handler struct {
	useCase GetAvailabilitySummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilitySummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/availability/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("GET /businesses/{id}/availability/summary - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailabilitySummary.Request{BusinessID: businessID})
	if err != nil {
		if errors.Is(err, getAvailabilitySummary.ErrInvalidInput) {
			h.logger.Warn("GET /businesses/{id}/availability/summary - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}

		h.logger.Error("GET /businesses/{id}/availability/summary - Failed: business_id=%s: %v",
			businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/availability/summary - OK: business_id=%s, closed_dates=%d",
		businessID, len(result.ClosedDates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
