package check_closed_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookhive/BHS-AvailabilityService/internal/api/handlers"
	"github.com/bookhive/BHS-AvailabilityService/internal/service/closeddates"
)

const (
	msgMissingBusinessID = "идентификатор бизнеса обязателен"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/businesses/{businessId}/closed-dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("GET /businesses/{id}/closed-dates/{date} - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	dateStr := vars["date"]

	result, err := h.service.Check(r.Context(), businessID, dateStr)
	if err != nil {
		switch {
		case errors.Is(err, closeddates.ErrInvalidDate):
			h.logger.Warn("GET /businesses/{id}/closed-dates/{date} - Invalid date: business_id=%s, date=%s",
				businessID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, closeddates.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/closed-dates/{date} - Invalid input: business_id=%s: %v",
				businessID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /businesses/{id}/closed-dates/{date} - Failed: business_id=%s, date=%s: %v",
				businessID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/closed-dates/{date} - OK: business_id=%s, date=%s, closed=%v",
		businessID, dateStr, result.IsClosed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
