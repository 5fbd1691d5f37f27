package get_day_management

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/salonservice"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule/hours"
)

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

// placesInScope возвращает планируемые места набора филиалов
// Места без филиала невалидны и уже отброшены конвертацией в domain
func placesInScope(salon *salonservice.Salon, branches []salonservice.Branch) []*domain.Place {
	inScope := make(map[int64]struct{}, len(branches))
	for _, branch := range branches {
		inScope[branch.ID] = struct{}{}
	}

	places := make([]*domain.Place, 0, len(salon.Places))
	for _, place := range salon.DomainPlaces() {
		if _, ok := inScope[place.BranchID]; ok {
			places = append(places, place)
		}
	}

	return places
}

// availableMastersFor возвращает мастеров, доступных для закрепления за
// местом: всех, кто не закреплен за другим местом в этот день
// Текущий закрепленный мастер места включается всегда
func availableMastersFor(masters []*domain.Master, assignedPlaceByMaster map[int64]int64, placeID int64) []MasterRef {
	available := make([]MasterRef, 0, len(masters))
	for _, master := range masters {
		if assignedTo, assigned := assignedPlaceByMaster[master.ID]; assigned && assignedTo != placeID {
			continue
		}
		available = append(available, MasterRef{ID: master.ID, Name: master.Name})
	}
	return available
}
