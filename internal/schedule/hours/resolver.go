package hours

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Window рабочее окно на конкретную дату
type Window struct {
	Open  types.TimeString
	Close types.TimeString
}

// Resolve возвращает рабочее окно для даты по недельному расписанию
//
// Nil-результат означает нерабочий день: либо день недели выключен,
// либо расписание вообще не настроено (weekly == nil)
//
// Чистая функция своих аргументов, без кеширования
func Resolve(weekly *domain.WeeklyHours, date time.Time) (*Window, error) {
	if weekly == nil {
		return nil, nil
	}

	day := weekly.ForWeekday(date.Weekday())
	if !day.Enabled {
		return nil, nil
	}

	open, err := types.NewTimeStringFromString(day.Open)
	if err != nil {
		return nil, fmt.Errorf("%w: open time for %s: %v", ErrMalformedSchedule, date.Weekday(), err)
	}

	closeTime, err := types.NewTimeStringFromString(day.Close)
	if err != nil {
		return nil, fmt.Errorf("%w: close time for %s: %v", ErrMalformedSchedule, date.Weekday(), err)
	}

	// Поддерживаются только окна внутри одних суток: open строго раньше close
	if !open.IsBefore(closeTime) {
		return nil, fmt.Errorf("%w: open %s is not before close %s", ErrMalformedSchedule, open, closeTime)
	}

	return &Window{Open: open, Close: closeTime}, nil
}
