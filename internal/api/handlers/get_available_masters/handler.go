package get_available_masters

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
	msgSalonNotFound  = "салон не найден"
	msgPlaceNotFound  = "место не найдено"
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

// Handle GET /api/v1/salons/{salonId}/places/{placeId}/available-masters
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем userID из контекста (установлен auth middleware)
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /salons/{id}/places/{id}/available-masters - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Извлекаем salonId и placeId из URL
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/places/{id}/available-masters - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	placeID, err := strconv.ParseInt(vars["placeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/places/{id}/available-masters - Invalid place ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	// Извлекаем date из query параметров (обязателен)
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salons/{id}/places/{id}/available-masters - Missing date: salon_id=%d", salonID)
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/places/{id}/available-masters - Invalid date: salon_id=%d, date=%s",
			salonID, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем сервис
	result, err := h.service.AvailableMasters(r.Context(), &models.AvailableMastersRequest{
		UserID:  userID,
		SalonID: salonID,
		PlaceID: placeID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/places/{id}/available-masters - Invalid input: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, assignments.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/places/{id}/available-masters - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, assignments.ErrPlaceNotFound):
			h.logger.Warn("GET /salons/{id}/places/{id}/available-masters - Place not found: salon_id=%d, place_id=%d",
				salonID, placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		default:
			h.logger.Error("GET /salons/{id}/places/{id}/available-masters - Failed to list masters: salon_id=%d, place_id=%d, error=%v",
				salonID, placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/places/{id}/available-masters - %d masters available: salon_id=%d, place_id=%d, date=%s",
		len(result.Masters), salonID, placeID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
