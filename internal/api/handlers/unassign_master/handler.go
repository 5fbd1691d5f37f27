package unassign_master

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/assignments"
	"github.com/m04kA/SMC-ScheduleService/internal/service/assignments/models"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgInvalidPlaceID = "некорректный ID места"
	msgInvalidDate    = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgDateRequired   = "параметр date обязателен"
	msgUnauthorized   = "отсутствует заголовок X-User-ID"
)

type Handler struct {
	service AssignmentsService
	logger  Logger
}

func NewHandler(service AssignmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/salons/{salonId}/places/{placeId}/assignment
// Query params: date (required, YYYY-MM-DD)
// Снятие с пустой ячейки отвечает 204, как и успешное снятие
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем userID из контекста (установлен auth middleware)
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /salons/{id}/places/{id}/assignment - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Извлекаем salonId и placeId из URL
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /salons/{id}/places/{id}/assignment - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	placeID, err := strconv.ParseInt(vars["placeId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /salons/{id}/places/{id}/assignment - Invalid place ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	// Извлекаем date из query параметров (обязателен)
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("DELETE /salons/{id}/places/{id}/assignment - Missing date: salon_id=%d", salonID)
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("DELETE /salons/{id}/places/{id}/assignment - Invalid date: salon_id=%d, date=%s",
			salonID, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем сервис
	err = h.service.Unassign(r.Context(), &models.UnassignRequest{
		UserID:  userID,
		SalonID: salonID,
		PlaceID: placeID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrInvalidInput):
			h.logger.Warn("DELETE /salons/{id}/places/{id}/assignment - Invalid input: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /salons/{id}/places/{id}/assignment - Failed to unassign: salon_id=%d, place_id=%d, error=%v",
				salonID, placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /salons/{id}/places/{id}/assignment - Unassigned: salon_id=%d, place_id=%d, date=%s, user_id=%d",
		salonID, placeID, dateStr, userID)
	w.WriteHeader(http.StatusNoContent)
}
