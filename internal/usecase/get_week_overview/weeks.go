package get_week_overview

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/salonservice"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule/hours"
)

// weekStart возвращает понедельник недели, содержащей base, со смещением
// offset недель
//
// Неделя всегда нормализуется к понедельнику независимо от текущего дня:
// воскресенье относится к неделе, начавшейся 6 дней назад, а не открывает
// новую неделю
func weekStart(base time.Time, offset int) time.Time {
	daysSinceMonday := (int(base.Weekday()) + 6) % 7

	midnight := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, base.Location())
	return midnight.AddDate(0, 0, -daysSinceMonday+offset*domain.DaysPerWeek)
}

// weekDates возвращает 7 дат недели, начиная с понедельника
func weekDates(monday time.Time) []time.Time {
	dates := make([]time.Time, domain.DaysPerWeek)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// branchScope возвращает филиалы, участвующие в запросе
// При указанном branchID - только его, иначе все филиалы салона
func branchScope(salon *salonservice.Salon, branchID *int64) ([]salonservice.Branch, error) {
	if branchID == nil {
		return salon.Branches, nil
	}

	branch := salon.FindBranch(*branchID)
	if branch == nil {
		return nil, ErrBranchNotFound
	}

	return []salonservice.Branch{*branch}, nil
}

// resolveDateWindow возвращает рабочее окно даты по набору филиалов:
// min(open) / max(close) по филиалам, открытым в этот день
// Nil-результат означает, что все филиалы в этот день закрыты
func resolveDateWindow(branches []salonservice.Branch, date time.Time) (*hours.Window, error) {
	var window *hours.Window

	for _, branch := range branches {
		branchWindow, err := hours.Resolve(branch.Hours.ToDomain(), date)
		if err != nil {
			return nil, fmt.Errorf("%w: branch id=%d: %v", ErrMalformedSchedule, branch.ID, err)
		}
		if branchWindow == nil {
			continue
		}

		if window == nil {
			window = &hours.Window{Open: branchWindow.Open, Close: branchWindow.Close}
			continue
		}

		if branchWindow.Open.IsBefore(window.Open) {
			window.Open = branchWindow.Open
		}
		if branchWindow.Close.IsAfter(window.Close) {
			window.Close = branchWindow.Close
		}
	}

	return window, nil
}

// totalCapacity суммарная вместимость мест в наборе филиалов
// Места без филиала исключены из планирования и не учитываются
func totalCapacity(salon *salonservice.Salon, branches []salonservice.Branch) int {
	inScope := make(map[int64]struct{}, len(branches))
	for _, branch := range branches {
		inScope[branch.ID] = struct{}{}
	}

	capacity := 0
	for _, place := range salon.DomainPlaces() {
		if _, ok := inScope[place.BranchID]; ok {
			capacity += place.Capacity
		}
	}

	return capacity
}
