package set_booking_total

import (
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings/models"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

// SetTotalRequest HTTP request model
type SetTotalRequest struct {
	TotalAmount money.Money `json:"totalAmount"` // "25000.00"
	Version     *int64      `json:"version,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SetTotalRequest) ToServiceRequest(rt domain.ResourceType, bookingID int64, actor string) *models.SetTotalRequest {
	return &models.SetTotalRequest{
		ResourceType: rt,
		BookingID:    bookingID,
		TotalAmount:  r.TotalAmount,
		Version:      r.Version,
		ActorEmail:   actor,
	}
}
