package assign_master

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	assignMaster "github.com/m04kA/SMC-ScheduleService/internal/usecase/assign_master"
)

const (
	msgInvalidSalonID      = "некорректный ID салона"
	msgInvalidPlaceID      = "некорректный ID места"
	msgInvalidBody         = "некорректное тело запроса"
	msgInvalidDate         = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgSalonNotFound       = "салон не найден"
	msgPlaceNotFound       = "место не найдено"
	msgMasterNotFound      = "мастер не найден"
	msgPlaceNotSchedulable = "место не привязано к филиалу"
	msgMasterBusy          = "мастер уже закреплен за другим местом на эту дату"
	msgUnauthorized        = "отсутствует заголовок X-User-ID"
)

type Handler struct {
	useCase AssignMasterUseCase
	logger  Logger
}

func NewHandler(useCase AssignMasterUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/salons/{salonId}/places/{placeId}/assignment
// Body: {"masterId": 42, "date": "2025-06-02"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем userID из контекста (установлен auth middleware)
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /salons/{id}/places/{id}/assignment - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Извлекаем salonId и placeId из URL
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /salons/{id}/places/{id}/assignment - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	placeID, err := strconv.ParseInt(vars["placeId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /salons/{id}/places/{id}/assignment - Invalid place ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlaceID)
		return
	}

	// Декодируем тело запроса
	var req AssignMasterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/{id}/places/{id}/assignment - Invalid body: salon_id=%d, error=%v",
			salonID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("PUT /salons/{id}/places/{id}/assignment - Invalid date: salon_id=%d, date=%s",
			salonID, req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &assignMaster.Request{
		UserID:   userID,
		SalonID:  salonID,
		PlaceID:  placeID,
		MasterID: req.MasterID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignMaster.ErrInvalidInput):
			h.logger.Warn("PUT /salons/{id}/places/{id}/assignment - Invalid input: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, assignMaster.ErrSalonNotFound):
			h.logger.Warn("PUT /salons/{id}/places/{id}/assignment - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, assignMaster.ErrPlaceNotFound):
			h.logger.Warn("PUT /salons/{id}/places/{id}/assignment - Place not found: salon_id=%d, place_id=%d",
				salonID, placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, assignMaster.ErrMasterNotFound):
			h.logger.Warn("PUT /salons/{id}/places/{id}/assignment - Master not found: salon_id=%d, master_id=%d",
				salonID, req.MasterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, assignMaster.ErrPlaceNotSchedulable):
			h.logger.Warn("PUT /salons/{id}/places/{id}/assignment - Place not schedulable: salon_id=%d, place_id=%d",
				salonID, placeID)
			handlers.RespondUnprocessableEntity(w, msgPlaceNotSchedulable)

		case errors.Is(err, assignMaster.ErrMasterAlreadyAssigned):
			h.logger.Warn("PUT /salons/{id}/places/{id}/assignment - Master already assigned: salon_id=%d, master_id=%d, date=%s",
				salonID, req.MasterID, req.Date)
			handlers.RespondConflict(w, msgMasterBusy)

		default:
			h.logger.Error("PUT /salons/{id}/places/{id}/assignment - Failed to assign master: salon_id=%d, place_id=%d, error=%v",
				salonID, placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{id}/places/{id}/assignment - Master assigned: salon_id=%d, place_id=%d, master_id=%d, date=%s, user_id=%d",
		salonID, placeID, result.MasterID, req.Date, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
