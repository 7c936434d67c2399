package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookhive/BHS-AvailabilityService/internal/api/handlers"
	"github.com/bookhive/BHS-AvailabilityService/internal/service/schedule"
	"github.com/bookhive/BHS-AvailabilityService/internal/service/schedule/models"
)

const (
	msgMissingBusinessID  = "идентификатор бизнеса обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
)

// UpdateHoursResponse HTTP response model
type UpdateHoursResponse struct {
	Message string `json:"message"`
	Updated int    `json:"updated"`
	Failed  int    `json:"failed,omitempty"`
}

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

// Handle PUT /api/v1/businesses/{businessId}/hours
// Body: {"monday": {"selectedSlots": [...], "isOpen": true}, ...}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID := vars["businessId"]
	if businessID == "" {
		h.logger.Warn("PUT /businesses/{id}/hours - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	var weekly models.WeeklyHours
	if err := handlers.DecodeJSON(r, &weekly); err != nil {
		h.logger.Warn("PUT /businesses/{id}/hours - Invalid request body: business_id=%s: %v",
			businessID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWeeklyHours(r.Context(), businessID, weekly)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidInput) {
			h.logger.Warn("PUT /businesses/{id}/hours - Invalid input: business_id=%s: %v",
				businessID, err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}

		h.logger.Error("PUT /businesses/{id}/hours - Failed: business_id=%s: %v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /businesses/{id}/hours - OK: business_id=%s, updated=%d, failed=%d",
		businessID, result.Updated, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, UpdateHoursResponse{
		Message: "business hours updated",
		Updated: result.Updated,
		Failed:  result.Failed,
	})
}
