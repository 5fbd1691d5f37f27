package get_day_management

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса дневной сетки управления местами
type Request struct {
	UserID   int64     // ID оператора (для логирования, не влияет на результат)
	SalonID  int64     // ID салона
	BranchID *int64    // Фильтр по филиалу (опционально, если nil - все филиалы)
	Date     time.Time // Дата (без времени)
}

// Response модель ответа с дневной сеткой
type Response struct {
	SalonID int64
	Date    time.Time

	// IsWorking = false означает явный нерабочий день: UI рисует "закрыто",
	// а не пустую рабочую сетку
	IsWorking bool

	// Окно дня; nil для нерабочего дня
	Open  *types.TimeString
	Close *types.TimeString

	Slots  []types.TimeString // Метки сетки (30-минутный шаг)
	Places []PlaceSchedule

	// Мастера, у которых есть записи на дату, но нет закрепления за местом -
	// операторский сигнал "требуется закрепление"
	MastersNeedingAssignment []MasterRef
}

// PlaceSchedule сетка одного места
type PlaceSchedule struct {
	PlaceID  int64
	Name     string
	BranchID int64
	Capacity int

	// Мастер, закрепленный за местом на эту дату; nil = место свободно
	AssignedMaster *MasterRef

	// Мастера, доступные для закрепления: не занятые другим местом в этот
	// день; текущий закрепленный мастер присутствует всегда
	AvailableMasters []MasterRef

	BookedSlots []BookedSlot
}

// BookedSlot слот места с хотя бы одной записью
type BookedSlot struct {
	Time     types.TimeString
	Bookings []BookingInfo
}

// BookingInfo данные записи для операторской сетки
type BookingInfo struct {
	ID          int64
	ClientName  string
	ServiceName string
	MasterID    *int64
}

// MasterRef краткая ссылка на мастера
type MasterRef struct {
	ID   int64
	Name string
}
