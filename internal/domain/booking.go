package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Booking запись клиента - неизменяемый факт из подсистемы бронирования
// Сервис расписания только читает записи, никогда не создает и не меняет их
type Booking struct {
	ID       int64
	SalonID  int64
	BranchID int64
	PlaceID  int64
	MasterID *int64 // nil = запись без закрепленного мастера
	Date     time.Time
	// StartTime метка слота; гранулярность соответствует сетке, из которой
	// была создана запись (10 минут для обзора, 30 для управления)
	StartTime   types.TimeString
	ClientName  string
	ServiceName string

	CreatedAt time.Time
}

// SalonBookingsFilter фильтр для чтения записей салона
type SalonBookingsFilter struct {
	SalonID   int64      // Обязательный параметр
	BranchID  *int64     // Фильтр по филиалу (опционально, если nil - все филиалы)
	PlaceID   *int64     // Фильтр по месту (опционально)
	StartDate *time.Time // Начало периода (опционально)
	EndDate   *time.Time // Конец периода (опционально)
}
