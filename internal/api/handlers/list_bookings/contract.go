package list_bookings

import (
	"context"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings/models"
)

type BookingService interface {
	ListByFilter(ctx context.Context, req *models.ListRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
