package get_closed_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookhive/BHS-AvailabilityService/internal/api/handlers"
	"github.com/bookhive/BHS-AvailabilityService/internal/service/closeddates"
)

const (
	msgMissingBusinessID = "идентификатор бизнеса обязателен"
)

type Handler struct {
	service ClosedDatesService
	logger  Logger
}

func NewHandler(service ClosedDatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/closed-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("GET /businesses/{id}/closed-dates - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	dates, err := h.service.List(r.Context(), businessID)
	if err != nil {
		if errors.Is(err, closeddates.ErrInvalidInput) {
			h.logger.Warn("GET /businesses/{id}/closed-dates - Invalid input: business_id=%s: %v",
				businessID, err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}

		h.logger.Error("GET /businesses/{id}/closed-dates - Failed: business_id=%s: %v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/closed-dates - OK: business_id=%s, count=%d", businessID, len(dates))
	handlers.RespondJSON(w, http.StatusOK, ListResponse{ClosedDates: dates})
}
