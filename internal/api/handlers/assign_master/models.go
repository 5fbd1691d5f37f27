package assign_master

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	assignMaster "github.com/m04kA/SMC-ScheduleService/internal/usecase/assign_master"
)

// AssignMasterRequest HTTP request body
type AssignMasterRequest struct {
	MasterID int64  `json:"masterId"`
	Date     string `json:"date"` // "YYYY-MM-DD"
}

// AssignmentResponse HTTP response model
type AssignmentResponse struct {
	ID       int64  `json:"id"`
	SalonID  int64  `json:"salonId"`
	PlaceID  int64  `json:"placeId"`
	MasterID int64  `json:"masterId"`
	Date     string `json:"date"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignMaster.Response) *AssignmentResponse {
	return &AssignmentResponse{
		ID:        resp.ID,
		SalonID:   resp.SalonID,
		PlaceID:   resp.PlaceID,
		MasterID:  resp.MasterID,
		Date:      resp.Date.Format(domain.DateFormat),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
