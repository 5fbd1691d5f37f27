package slotgrid

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule/hours"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ResolveFunc разрешает рабочее окно для даты
// Nil-окно означает нерабочий день
type ResolveFunc func(date time.Time) (*hours.Window, error)

// UnionResult объединенное окно по набору дат
type UnionResult struct {
	Open  types.TimeString
	Close types.TimeString

	// UsedFallback = true, когда ни один день набора не является рабочим
	// и окно взято из констант по умолчанию. Клиент обязан отличать такое
	// окно от настоящих часов работы
	UsedFallback bool
}

// Slots генерирует упорядоченный список меток слотов от open (включительно)
// до close (не включая close) с шагом granularityMinutes
//
// Генерация чистая и повторяемая: каждый вызов строит список заново из
// start/step, без живого итератора с состоянием
func Slots(open, closeTime types.TimeString, granularityMinutes int) ([]types.TimeString, error) {
	if granularityMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGranularity, granularityMinutes)
	}

	if !open.IsBefore(closeTime) {
		return nil, fmt.Errorf("%w: open=%s close=%s", ErrInvalidWindow, open, closeTime)
	}

	openMinutes, err := open.TotalMinutes()
	if err != nil {
		return nil, fmt.Errorf("%w: open=%s: %v", ErrInvalidWindow, open, err)
	}

	closeMinutes, err := closeTime.TotalMinutes()
	if err != nil {
		return nil, fmt.Errorf("%w: close=%s: %v", ErrInvalidWindow, closeTime, err)
	}

	count := (closeMinutes - openMinutes + granularityMinutes - 1) / granularityMinutes

	slots := make([]types.TimeString, 0, count)
	for minute := openMinutes; minute < closeMinutes; minute += granularityMinutes {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", minute/60, minute%60)))
	}

	return slots, nil
}

// UnionWindow возвращает минимальное окно, покрывающее рабочие окна всех
// дат набора: min(open) / max(close) по включенным дням
//
// Окно может оказаться шире, чем нужно любому отдельному дню (понедельник
// 09-12 и пятница 15-18 дают сетку 09-18 с большими нерабочими дырами) -
// это осознанный продуктовый компромисс: одна общая сетка на всю неделю
//
// Если ни один день не рабочий, возвращается окно по умолчанию
// с UsedFallback = true, чтобы у UI всегда были строки для отрисовки
func UnionWindow(dates []time.Time, resolve ResolveFunc) (*UnionResult, error) {
	var result *UnionResult

	for _, date := range dates {
		window, err := resolve(date)
		if err != nil {
			return nil, err
		}
		if window == nil {
			continue
		}

		if result == nil {
			result = &UnionResult{Open: window.Open, Close: window.Close}
			continue
		}

		if window.Open.IsBefore(result.Open) {
			result.Open = window.Open
		}
		if window.Close.IsAfter(result.Close) {
			result.Close = window.Close
		}
	}

	if result == nil {
		return &UnionResult{
			Open:         types.TimeString(domain.FallbackOpenTime),
			Close:        types.TimeString(domain.FallbackCloseTime),
			UsedFallback: true,
		}, nil
	}

	return result, nil
}
