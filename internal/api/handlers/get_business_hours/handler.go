package get_business_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookhive/BHS-AvailabilityService/internal/api/handlers"
	"github.com/bookhive/BHS-AvailabilityService/internal/service/schedule"
)

const msgMissingBusinessID = "идентификатор бизнеса обязателен"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/hours
// Возвращает расписание недели, ключ — имя дня (monday..sunday)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("GET /businesses/{id}/hours - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	weekly, err := h.service.GetWeeklyHours(r.Context(), businessID)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidInput) {
			h.logger.Warn("GET /businesses/{id}/hours - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}

		h.logger.Error("GET /businesses/{id}/hours - Failed: business_id=%s: %v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{id}/hours - OK: business_id=%s", businessID)
	handlers.RespondJSON(w, http.StatusOK, weekly)
}
