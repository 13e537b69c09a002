package update_payment_status

import (
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings/models"
)

// UpdatePaymentStatusRequest HTTP request model
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
	Version       *int64 `json:"version,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdatePaymentStatusRequest) ToServiceRequest(rt domain.ResourceType, bookingID int64, actor string) *models.UpdatePaymentStatusRequest {
	return &models.UpdatePaymentStatusRequest{
		ResourceType:  rt,
		BookingID:     bookingID,
		PaymentStatus: r.PaymentStatus,
		Version:       r.Version,
		ActorEmail:    actor,
	}
}
