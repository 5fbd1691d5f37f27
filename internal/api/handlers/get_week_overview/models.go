package get_week_overview

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getWeekOverview "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_overview"
)

// WeekOverviewResponse HTTP response model
type WeekOverviewResponse struct {
	SalonID      int64         `json:"salonId"`
	WeekStart    string        `json:"weekStart"` // Понедельник, "YYYY-MM-DD"
	Open         string        `json:"open"`
	Close        string        `json:"close"`
	UsedFallback bool          `json:"usedFallback"`
	Slots        []string      `json:"slots"`
	Days         []DayOverview `json:"days"`
}

// DayOverview один день недельной сетки
type DayOverview struct {
	Date      string     `json:"date"`
	IsWorking bool       `json:"isWorking"`
	Open      *string    `json:"open,omitempty"`
	Close     *string    `json:"close,omitempty"`
	Cells     []SlotCell `json:"cells"`
}

// SlotCell одна ячейка сетки
type SlotCell struct {
	Time         string `json:"time"`
	IsWorking    bool   `json:"isWorking"`
	BookingCount int    `json:"bookingCount"`
	Bucket       string `json:"bucket"`
	IsPast       bool   `json:"isPast"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekOverview.Response) *WeekOverviewResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	days := make([]DayOverview, len(resp.Days))
	for i, day := range resp.Days {
		cells := make([]SlotCell, len(day.Cells))
		for j, cell := range day.Cells {
			cells[j] = SlotCell{
				Time:         cell.Time.String(),
				IsWorking:    cell.IsWorking,
				BookingCount: cell.BookingCount,
				Bucket:       string(cell.Bucket),
				IsPast:       cell.IsPast,
			}
		}

		days[i] = DayOverview{
			Date:      day.Date.Format(domain.DateFormat),
			IsWorking: day.IsWorking,
			Cells:     cells,
		}
		if day.Open != nil {
			open := day.Open.String()
			days[i].Open = &open
		}
		if day.Close != nil {
			closeTime := day.Close.String()
			days[i].Close = &closeTime
		}
	}

	return &WeekOverviewResponse{
		SalonID:      resp.SalonID,
		WeekStart:    resp.WeekStart.Format(domain.DateFormat),
		Open:         resp.Open.String(),
		Close:        resp.Close.String(),
		UsedFallback: resp.UsedFallback,
		Slots:        slots,
		Days:         days,
	}
}
