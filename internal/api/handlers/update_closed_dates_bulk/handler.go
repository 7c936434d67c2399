package update_closed_dates_bulk

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookhive/BHS-AvailabilityService/internal/api/handlers"
	"github.com/bookhive/BHS-AvailabilityService/internal/service/closeddates"
)

const (
	msgMissingBusinessID  = "идентификатор бизнеса обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle PUT /api/v1/businesses/{businessId}/closed-dates/bulk
// Body: {"closed_dates": ["YYYY-MM-DD", ...]}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("PUT /businesses/{id}/closed-dates/bulk - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	var req BulkRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/closed-dates/bulk - Invalid request body: business_id=%s: %v",
			businessID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.BulkReplace(r.Context(), businessID, req.ClosedDates)
	if err != nil {
		switch {
		case errors.Is(err, closeddates.ErrInvalidDate):
			h.logger.Warn("PUT /businesses/{id}/closed-dates/bulk - Invalid date: business_id=%s: %v",
				businessID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, closeddates.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/closed-dates/bulk - Invalid input: business_id=%s: %v",
				businessID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /businesses/{id}/closed-dates/bulk - Failed: business_id=%s: %v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/closed-dates/bulk - OK: business_id=%s, added=%d, removed=%d",
		businessID, result.Added, result.Removed)
	handlers.RespondJSON(w, http.StatusOK, BulkResponse{
		Message: "closed dates updated",
		Added:   result.Added,
		Removed: result.Removed,
	})
}
