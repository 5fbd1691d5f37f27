package models

import "time"

// Request модели

// UnassignRequest запрос на снятие закрепления мастера с места
type UnassignRequest struct {
	UserID  int64     `json:"userId"`
	SalonID int64     `json:"salonId"`
	PlaceID int64     `json:"placeId"`
	Date    time.Time `json:"date"`
}

// AvailableMastersRequest запрос на список доступных мастеров для места
type AvailableMastersRequest struct {
	UserID  int64     `json:"userId"`
	SalonID int64     `json:"salonId"`
	PlaceID int64     `json:"placeId"`
	Date    time.Time `json:"date"`
}

// Response модели

// MasterResponse мастер в списке доступных
type MasterResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	BranchID *int64 `json:"branchId,omitempty"`
}

// AvailableMastersResponse список мастеров, доступных для закрепления за местом
// CurrentMasterID - мастер, закрепленный за местом сейчас (nil, если место свободно);
// он всегда присутствует и в списке Masters, чтобы текущий выбор не пропадал из UI
type AvailableMastersResponse struct {
	Masters         []MasterResponse `json:"masters"`
	CurrentMasterID *int64           `json:"currentMasterId,omitempty"`
}
