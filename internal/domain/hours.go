package domain

import "time"

// DayHours часы работы на один день недели
// Если Enabled = false, день считается нерабочим и Open/Close игнорируются
type DayHours struct {
	Enabled bool
	Open    string // "HH:MM"
	Close   string // "HH:MM"
}

// WeeklyHours недельное расписание работы филиала
// Неделя начинается с понедельника (Monday-first)
// Nil-указатель на WeeklyHours означает, что расписание не настроено -
// все дни трактуются как нерабочие
type WeeklyHours struct {
	Monday    DayHours
	Tuesday   DayHours
	Wednesday DayHours
	Thursday  DayHours
	Friday    DayHours
	Saturday  DayHours
	Sunday    DayHours
}

// ForWeekday возвращает часы работы для указанного дня недели
func (w *WeeklyHours) ForWeekday(weekday time.Weekday) DayHours {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DayHours{}
	}
}
