package get_booking

import (
	"context"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, rt domain.ResourceType, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
