package get_day_management

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getDayManagement "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_management"
)

// DayManagementResponse HTTP response model
type DayManagementResponse struct {
	SalonID   int64   `json:"salonId"`
	Date      string  `json:"date"` // "YYYY-MM-DD"
	IsWorking bool    `json:"isWorking"`
	Open      *string `json:"open,omitempty"`
	Close     *string `json:"close,omitempty"`

	Slots  []string        `json:"slots"`
	Places []PlaceSchedule `json:"places"`

	MastersNeedingAssignment []MasterRef `json:"mastersNeedingAssignment"`
}

// PlaceSchedule сетка одного места на день
type PlaceSchedule struct {
	PlaceID  int64  `json:"placeId"`
	Name     string `json:"name"`
	BranchID int64  `json:"branchId"`
	Capacity int    `json:"capacity"`

	AssignedMaster   *MasterRef   `json:"assignedMaster,omitempty"`
	AvailableMasters []MasterRef  `json:"availableMasters"`
	BookedSlots      []BookedSlot `json:"bookedSlots"`
}

// BookedSlot слот с записями
type BookedSlot struct {
	Time     string        `json:"time"`
	Bookings []BookingInfo `json:"bookings"`
}

// BookingInfo данные записи
type BookingInfo struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
	MasterID    *int64 `json:"masterId,omitempty"`
}

// MasterRef краткая ссылка на мастера
type MasterRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayManagement.Response) *DayManagementResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	places := make([]PlaceSchedule, len(resp.Places))
	for i, place := range resp.Places {
		bookedSlots := make([]BookedSlot, len(place.BookedSlots))
		for j, slot := range place.BookedSlots {
			bookings := make([]BookingInfo, len(slot.Bookings))
			for k, booking := range slot.Bookings {
				bookings[k] = BookingInfo{
					ID:          booking.ID,
					ClientName:  booking.ClientName,
					ServiceName: booking.ServiceName,
					MasterID:    booking.MasterID,
				}
			}
			bookedSlots[j] = BookedSlot{
				Time:     slot.Time.String(),
				Bookings: bookings,
			}
		}

		places[i] = PlaceSchedule{
			PlaceID:          place.PlaceID,
			Name:             place.Name,
			BranchID:         place.BranchID,
			Capacity:         place.Capacity,
			AssignedMaster:   toMasterRef(place.AssignedMaster),
			AvailableMasters: toMasterRefs(place.AvailableMasters),
			BookedSlots:      bookedSlots,
		}
	}

	result := &DayManagementResponse{
		SalonID:                  resp.SalonID,
		Date:                     resp.Date.Format(domain.DateFormat),
		IsWorking:                resp.IsWorking,
		Slots:                    slots,
		Places:                   places,
		MastersNeedingAssignment: toMasterRefs(resp.MastersNeedingAssignment),
	}
	if resp.Open != nil {
		open := resp.Open.String()
		result.Open = &open
	}
	if resp.Close != nil {
		closeTime := resp.Close.String()
		result.Close = &closeTime
	}

	return result
}

func toMasterRef(ref *getDayManagement.MasterRef) *MasterRef {
	if ref == nil {
		return nil
	}
	return &MasterRef{ID: ref.ID, Name: ref.Name}
}

func toMasterRefs(refs []getDayManagement.MasterRef) []MasterRef {
	result := make([]MasterRef, len(refs))
	for i, ref := range refs {
		result[i] = MasterRef{ID: ref.ID, Name: ref.Name}
	}
	return result
}
