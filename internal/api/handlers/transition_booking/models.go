package transition_booking

import (
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings/models"
)

// TransitionRequest HTTP request model
type TransitionRequest struct {
	Status  string `json:"status"`
	Version *int64 `json:"version,omitempty"` // версия, которую видел сотрудник
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *TransitionRequest) ToServiceRequest(rt domain.ResourceType, bookingID int64, actor string) *models.TransitionRequest {
	return &models.TransitionRequest{
		ResourceType: rt,
		BookingID:    bookingID,
		Status:       r.Status,
		Version:      r.Version,
		ActorEmail:   actor,
	}
}
