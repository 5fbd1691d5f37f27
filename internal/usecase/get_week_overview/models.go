package get_week_overview

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса недельного обзора плотности записей
type Request struct {
	UserID     int64  // ID пользователя (для логирования, не влияет на результат)
	SalonID    int64  // ID салона
	BranchID   *int64 // Фильтр по филиалу (опционально, если nil - все филиалы)
	WeekOffset int    // Смещение в неделях от текущей (0 = неделя с сегодняшним днем)
}

// Response модель ответа с сеткой недели
type Response struct {
	SalonID   int64     // ID салона
	WeekStart time.Time // Понедельник отображаемой недели

	// Объединенное окно всех рабочих дней недели - общая сетка строк
	Open  types.TimeString
	Close types.TimeString

	// UsedFallback = true, когда ни один день недели не рабочий и окно
	// взято из констант по умолчанию, а не из реальных часов работы
	UsedFallback bool

	Slots []types.TimeString // Метки строк сетки (10-минутный шаг)
	Days  []DayOverview      // 7 дней, понедельник - воскресенье
}

// DayOverview один день недельного обзора
type DayOverview struct {
	Date      time.Time
	IsWorking bool // false = нерабочий день (отличается от "рабочий без записей")

	// Собственное окно дня; nil для нерабочего дня
	Open  *types.TimeString
	Close *types.TimeString

	Cells []SlotCell // По ячейке на каждую метку из Response.Slots
}

// SlotCell одна ячейка сетки (дата, слот)
type SlotCell struct {
	Time types.TimeString

	// IsWorking = true, когда слот попадает в собственное окно этого дня
	// Объединенное окно недели шире окон отдельных дней, поэтому часть
	// ячеек рабочего дня может быть нерабочей
	IsWorking bool

	BookingCount int
	Bucket       domain.DensityBucket

	// IsPast вычислен относительно одного момента, захваченного на весь
	// запрос; не влияет на Bucket, только на затемнение в UI
	IsPast bool
}
