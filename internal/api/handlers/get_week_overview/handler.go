package get_week_overview

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getWeekOverview "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_overview"
)

const (
	msgInvalidSalonID  = "некорректный ID салона"
	msgInvalidBranchID = "некорректный ID филиала"
	msgInvalidOffset   = "некорректное смещение недели"
	msgSalonNotFound   = "салон не найден"
	msgBranchNotFound  = "филиал не найден"
	msgInvalidSchedule = "некорректное расписание филиала"
)

type Handler struct {
	useCase GetWeekOverviewUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/schedule/week
// Query params: offset (optional, default 0), branchId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем salonId из URL
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/schedule/week - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Извлекаем offset из query параметров (по умолчанию 0 - текущая неделя)
	weekOffset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		weekOffset, err = strconv.Atoi(offsetStr)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/schedule/week - Invalid offset: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
	}

	// Извлекаем branchId из query параметров (опционально)
	var branchID *int64
	if branchIDStr := r.URL.Query().Get("branchId"); branchIDStr != "" {
		parsed, err := strconv.ParseInt(branchIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/schedule/week - Invalid branch ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBranchID)
			return
		}
		branchID = &parsed
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getWeekOverview.Request{
		SalonID:    salonID,
		BranchID:   branchID,
		WeekOffset: weekOffset,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeekOverview.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/schedule/week - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getWeekOverview.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/schedule/week - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getWeekOverview.ErrBranchNotFound):
			h.logger.Warn("GET /salons/{id}/schedule/week - Branch not found: salon_id=%d, branch_id=%v",
				salonID, branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, getWeekOverview.ErrMalformedSchedule):
			h.logger.Warn("GET /salons/{id}/schedule/week - Malformed schedule: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondUnprocessableEntity(w, msgInvalidSchedule)

		default:
			h.logger.Error("GET /salons/{id}/schedule/week - Failed to build overview: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/schedule/week - Overview built successfully: salon_id=%d, week_start=%s",
		salonID, result.WeekStart.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
