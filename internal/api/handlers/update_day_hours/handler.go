package update_day_hours

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookhive/BHS-AvailabilityService/internal/api/handlers"
	"github.com/bookhive/BHS-AvailabilityService/internal/service/schedule"
	"github.com/bookhive/BHS-AvailabilityService/internal/service/schedule/models"
)

const (
	msgMissingBusinessID  = "идентификатор бизнеса обязателен"
	msgInvalidDay         = "некорректное имя дня недели"
	msgInvalidRequestBody = "некорректное тело запроса"
)

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

// Handle PUT /api/v1/businesses/{businessId}/hours/{day}
// Body: {"selectedSlots": [...], "isOpen": true}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("PUT /businesses/{id}/hours/{day} - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	dayName := vars["day"]

	var dayData models.DayHours
	if err := handlers.DecodeJSON(r, &dayData); err != nil {
		h.logger.Warn("PUT /businesses/{id}/hours/{day} - Invalid request body: business_id=%s, day=%s: %v",
			businessID, dayName, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateDayHours(r.Context(), businessID, dayName, dayData); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDay):
			h.logger.Warn("PUT /businesses/{id}/hours/{day} - Invalid day: business_id=%s, day=%s",
				businessID, dayName)
			handlers.RespondBadRequest(w, msgInvalidDay)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/hours/{day} - Invalid input: business_id=%s: %v",
				businessID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /businesses/{id}/hours/{day} - Failed: business_id=%s, day=%s: %v",
				businessID, dayName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/hours/{day} - OK: business_id=%s, day=%s", businessID, dayName)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("business hours updated for %s", dayName),
	})
}
