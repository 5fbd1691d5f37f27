package get_day_management

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getDayManagement "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_management"
)

const (
	msgInvalidSalonID  = "некорректный ID салона"
	msgInvalidBranchID = "некорректный ID филиала"
	msgInvalidDate     = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgDateRequired    = "параметр date обязателен"
	msgSalonNotFound   = "салон не найден"
	msgBranchNotFound  = "филиал не найден"
	msgInvalidSchedule = "некорректное расписание филиала"
	msgUnauthorized    = "отсутствует заголовок X-User-ID"
)

type Handler struct {
	useCase GetDayManagementUseCase
	logger  Logger
}

func NewHandler(useCase GetDayManagementUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/schedule/day
// Query params: date (required, YYYY-MM-DD), branchId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем userID из контекста (установлен auth middleware)
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /salons/{id}/schedule/day - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Извлекаем salonId из URL
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/schedule/day - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	// Извлекаем date из query параметров (обязателен)
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salons/{id}/schedule/day - Missing date: salon_id=%d", salonID)
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/schedule/day - Invalid date: salon_id=%d, date=%s", salonID, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Извлекаем branchId из query параметров (опционально)
	var branchID *int64
	if branchIDStr := r.URL.Query().Get("branchId"); branchIDStr != "" {
		parsed, err := strconv.ParseInt(branchIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/schedule/day - Invalid branch ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBranchID)
			return
		}
		branchID = &parsed
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getDayManagement.Request{
		UserID:   userID,
		SalonID:  salonID,
		BranchID: branchID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayManagement.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/schedule/day - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getDayManagement.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/schedule/day - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getDayManagement.ErrBranchNotFound):
			h.logger.Warn("GET /salons/{id}/schedule/day - Branch not found: salon_id=%d, branch_id=%v",
				salonID, branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, getDayManagement.ErrMalformedSchedule):
			h.logger.Warn("GET /salons/{id}/schedule/day - Malformed schedule: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondUnprocessableEntity(w, msgInvalidSchedule)

		default:
			h.logger.Error("GET /salons/{id}/schedule/day - Failed to build day view: salon_id=%d, date=%s, error=%v",
				salonID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/schedule/day - Day view built successfully: salon_id=%d, date=%s, user_id=%d",
		salonID, dateStr, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
