package salonservice

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Salon модель салона из SalonService
// Содержит все данные конфигурации, которыми владеет внешний сервис:
// филиалы с расписанием, места и мастеров
type Salon struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Branches []Branch `json:"branches"`
	Places   []Place  `json:"places"`
	Masters  []Master `json:"masters"`
}

// Branch филиал салона
type Branch struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name"`
	Hours *WeeklyHours `json:"weeklyHours,omitempty"` // nil = расписание не настроено
}

// WeeklyHours недельное расписание филиала (неделя с понедельника)
type WeeklyHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// DayHours часы работы на один день недели
type DayHours struct {
	Enabled bool   `json:"enabled"`
	Open    string `json:"open,omitempty"`  // "HH:MM"
	Close   string `json:"close,omitempty"` // "HH:MM"
}

// Place рабочее место
type Place struct {
	ID       int64  `json:"id"`
	BranchID int64  `json:"branchId"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// Master мастер салона
type Master struct {
	ID       int64  `json:"id"`
	BranchID *int64 `json:"branchId,omitempty"` // nil = общий пул
	Name     string `json:"name"`
}

// ErrorResponse модель ошибки от SalonService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует расписание в domain модель
func (w *WeeklyHours) ToDomain() *domain.WeeklyHours {
	if w == nil {
		return nil
	}

	return &domain.WeeklyHours{
		Monday:    domain.DayHours(w.Monday),
		Tuesday:   domain.DayHours(w.Tuesday),
		Wednesday: domain.DayHours(w.Wednesday),
		Thursday:  domain.DayHours(w.Thursday),
		Friday:    domain.DayHours(w.Friday),
		Saturday:  domain.DayHours(w.Saturday),
		Sunday:    domain.DayHours(w.Sunday),
	}
}

// FindBranch ищет филиал по ID
func (s *Salon) FindBranch(branchID int64) *Branch {
	for i := range s.Branches {
		if s.Branches[i].ID == branchID {
			return &s.Branches[i]
		}
	}
	return nil
}

// FindPlace ищет место по ID
func (s *Salon) FindPlace(placeID int64) *Place {
	for i := range s.Places {
		if s.Places[i].ID == placeID {
			return &s.Places[i]
		}
	}
	return nil
}

// FindMaster ищет мастера по ID
func (s *Salon) FindMaster(masterID int64) *Master {
	for i := range s.Masters {
		if s.Masters[i].ID == masterID {
			return &s.Masters[i]
		}
	}
	return nil
}

// DomainPlaces конвертирует места в domain модели
// Места без филиала невалидны и отбрасываются
func (s *Salon) DomainPlaces() []*domain.Place {
	places := make([]*domain.Place, 0, len(s.Places))
	for _, p := range s.Places {
		place := &domain.Place{
			ID:       p.ID,
			SalonID:  s.ID,
			BranchID: p.BranchID,
			Name:     p.Name,
			Capacity: p.Capacity,
		}
		if !place.IsSchedulable() {
			continue
		}
		places = append(places, place)
	}
	return places
}

// DomainMasters конвертирует мастеров в domain модели
func (s *Salon) DomainMasters() []*domain.Master {
	masters := make([]*domain.Master, 0, len(s.Masters))
	for _, m := range s.Masters {
		masters = append(masters, &domain.Master{
			ID:       m.ID,
			SalonID:  s.ID,
			BranchID: m.BranchID,
			Name:     m.Name,
		})
	}
	return masters
}
