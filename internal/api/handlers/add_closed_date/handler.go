package add_closed_date

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
	msgAlreadyClosed      = "дата уже закрыта"
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

// Handle POST /api/v1/businesses/{businessId}/closed-dates
// Body: {"date": "YYYY-MM-DD", "reason": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("POST /businesses/{id}/closed-dates - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	var req AddRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/closed-dates - Invalid request body: business_id=%s: %v",
			businessID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Add(r.Context(), businessID, req.Date, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, closeddates.ErrInvalidDate):
			h.logger.Warn("POST /businesses/{id}/closed-dates - Invalid date: business_id=%s, date=%s",
				businessID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, closeddates.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/closed-dates - Invalid input: business_id=%s: %v",
				businessID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, closeddates.ErrAlreadyClosed):
			h.logger.Warn("POST /businesses/{id}/closed-dates - Already closed: business_id=%s, date=%s",
				businessID, req.Date)
			handlers.RespondConflict(w, msgAlreadyClosed)

		default:
			h.logger.Error("POST /businesses/{id}/closed-dates - Failed: business_id=%s, date=%s: %v",
				businessID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/closed-dates - OK: business_id=%s, date=%s", businessID, created.Date)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
