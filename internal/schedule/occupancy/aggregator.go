package occupancy

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Index индекс записей по ключу (дата, слот)
//
// Строится один раз на запрос, а не на каждую ячейку: при сетке недели
// 7 дней * ~50 слотов линейный проход по записям на каждую ячейку
// превращается в O(n*m), индекс сводит это к O(n) на построение
type Index struct {
	byDateTime map[indexKey][]*domain.Booking
}

type indexKey struct {
	date string
	slot types.TimeString
}

// NewIndex строит индекс по набору записей
func NewIndex(bookings []*domain.Booking) *Index {
	idx := &Index{
		byDateTime: make(map[indexKey][]*domain.Booking, len(bookings)),
	}

	for _, booking := range bookings {
		key := indexKey{
			date: booking.Date.Format(domain.DateFormat),
			slot: booking.StartTime,
		}
		idx.byDateTime[key] = append(idx.byDateTime[key], booking)
	}

	return idx
}

// At возвращает записи с точным совпадением даты и метки слота
func (i *Index) At(date time.Time, slot types.TimeString) []*domain.Booking {
	return i.byDateTime[indexKey{date: date.Format(domain.DateFormat), slot: slot}]
}

// AtPlace возвращает записи на дату, слот и конкретное место
func (i *Index) AtPlace(date time.Time, slot types.TimeString, placeID int64) []*domain.Booking {
	all := i.At(date, slot)
	if len(all) == 0 {
		return nil
	}

	filtered := make([]*domain.Booking, 0, len(all))
	for _, booking := range all {
		if booking.PlaceID == placeID {
			filtered = append(filtered, booking)
		}
	}

	return filtered
}

// CountAt возвращает количество записей на дату и слот
func (i *Index) CountAt(date time.Time, slot types.TimeString) int {
	return len(i.At(date, slot))
}

// Bucket классифицирует заполненность слота по количеству записей
// и суммарной вместимости:
//   - 0 записей              -> free
//   - вместимость 0          -> unknown (не free: вместимость неизвестна)
//   - доля занятости <= 0.5  -> low (граница: 2 записи из 4 мест - low)
//   - доля занятости > 0.5   -> high (3 записи из 4 мест - high)
func Bucket(bookingCount, totalCapacity int) domain.DensityBucket {
	if bookingCount == 0 {
		return domain.BucketFree
	}
	if totalCapacity == 0 {
		return domain.BucketUnknown
	}
	if float64(bookingCount)/float64(totalCapacity) <= domain.LowDensityThreshold {
		return domain.BucketLow
	}
	return domain.BucketHigh
}

// IsPast проверяет, что начало слота строго раньше now
//
// Флаг past не влияет на density bucket - это независимые измерения:
// bucket отвечает за заполненность, past за презентационное затемнение.
// Момент now должен быть захвачен один раз на весь запрос, иначе тикающие
// часы дадут разные границы past/future внутри одной сетки
func IsPast(date time.Time, slot types.TimeString, now time.Time) bool {
	minutes, err := slot.TotalMinutes()
	if err != nil {
		return false
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location()).
		Add(time.Duration(minutes) * time.Minute)

	return start.Before(now)
}
