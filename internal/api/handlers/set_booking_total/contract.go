package set_booking_total

import (
	"context"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings/models"
)

type BookingService interface {
	SetTotal(ctx context.Context, req *models.SetTotalRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
