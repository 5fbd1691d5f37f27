package get_available_masters

import (
	"github.com/m04kA/SMC-ScheduleService/internal/service/assignments/models"
)

// AvailableMastersResponse HTTP response model
type AvailableMastersResponse struct {
	Masters         []MasterResponse `json:"masters"`
	CurrentMasterID *int64           `json:"currentMasterId,omitempty"`
}

// MasterResponse мастер в списке доступных
type MasterResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	BranchID *int64 `json:"branchId,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AvailableMastersResponse) *AvailableMastersResponse {
	masters := make([]MasterResponse, len(resp.Masters))
	for i, m := range resp.Masters {
		masters[i] = MasterResponse{
			ID:       m.ID,
			Name:     m.Name,
			BranchID: m.BranchID,
		}
	}

	return &AvailableMastersResponse{
		Masters:         masters,
		CurrentMasterID: resp.CurrentMasterID,
	}
}
